package modehandler

import (
	"strings"

	"github.com/bethropolis/tidemark/internal/input"
	"github.com/bethropolis/tidemark/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	needsUpdate := false

	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer = append(mh.cmdBuffer, actionEvent.Rune)
		needsUpdate = true

	case input.ActionDeleteCharBackward:
		if len(mh.cmdBuffer) > 0 {
			mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]
			needsUpdate = true
		} else {
			mh.currentMode = ModeNormal
			mh.statusBar.ResetTemporaryMessage()
			logger.DebugTagf("mode", "ModeHandler: Exiting Command Mode via Backspace")
		}

	case input.ActionInsertNewLine:
		mh.currentMode = ModeNormal
		mh.executeCommand()

	case input.ActionQuit:
		mh.currentMode = ModeNormal
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.ResetTemporaryMessage()
		logger.DebugTagf("mode", "ModeHandler: Canceled Command Mode via Escape")

	default:
		actionProcessed = false
	}

	if needsUpdate && mh.currentMode == ModeCommand {
		mh.statusBar.SetTemporaryMessage(":%s", string(mh.cmdBuffer))
	}
	return actionProcessed
}

// executeCommand parses and runs the command in cmdBuffer.
func (mh *ModeHandler) executeCommand() {
	cmdStr := string(mh.cmdBuffer)
	mh.cmdBuffer = mh.cmdBuffer[:0]

	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		mh.statusBar.ResetTemporaryMessage()
		return
	}
	cmdName, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.DebugTagf("mode", "ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}
