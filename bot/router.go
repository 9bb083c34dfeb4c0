package bot

import (
	"strings"

	"ogeprepbot/topics"
)

// inputKind classifies one incoming text before any state is consulted.
// Classification order is a contract: commands and fixed menu labels
// always win over "treat as an answer", even mid-quiz.
type inputKind int

const (
	inputCommand inputKind = iota
	inputMenu
	inputTopic
	inputText
)

func (k inputKind) String() string {
	switch k {
	case inputCommand:
		return "command"
	case inputMenu:
		return "menu"
	case inputTopic:
		return "topic"
	default:
		return "text"
	}
}

var menuLabels = map[string]bool{
	btnReference:  true,
	btnTasks:      true,
	btnResults:    true,
	btnAbout:      true,
	btnHelp:       true,
	btnBack:       true,
	btnAdminStats: true,
	btnAdminUsers: true,
	btnAdminLogs:  true,
}

// adminOnly reports whether an input invokes an administrator view. The
// gate itself is applied once, at dispatch, for every such input.
func adminOnly(kind inputKind, payload string) bool {
	switch kind {
	case inputCommand:
		return payload == cmdAdmin || payload == cmdUsers || payload == cmdStats || payload == cmdLogs
	case inputMenu:
		return payload == btnAdminStats || payload == btnAdminUsers || payload == btnAdminLogs
	}
	return false
}

// classify maps raw message text to an input kind and its payload: the
// command name, the menu label, the topic name, or the text itself.
func classify(text string) (inputKind, string) {
	if strings.HasPrefix(text, "/") {
		cmd := strings.TrimPrefix(text, "/")
		if i := strings.IndexAny(cmd, " @"); i >= 0 {
			cmd = cmd[:i]
		}
		return inputCommand, cmd
	}
	if menuLabels[text] {
		return inputMenu, text
	}
	if name, ok := strings.CutPrefix(text, topicPrefix); ok {
		if _, known := topics.Get(name); known {
			return inputTopic, name
		}
	}
	return inputText, text
}
