package event

import (
	"encoding/json"
	"os"
	"strings"
)

// TriggerContext identifies what started a run. Detect returns exactly one
// variant; consumers switch on the concrete type.
type TriggerContext interface {
	trigger()
}

// PullRequest carries the pull request number and author login.
type PullRequest struct {
	Number int
	Author string
}

// Push carries the pushed commit SHA and branch name.
type Push struct {
	Commit string
	Branch string
}

// Unknown is the variant for runs whose trigger cannot be determined.
type Unknown struct{}

func (PullRequest) trigger() {}
func (Push) trigger()        {}
func (Unknown) trigger()     {}

// payload is the subset of the webhook event file Detect reads.
type payload struct {
	PullRequest struct {
		Number int `json:"number"`
		User   struct {
			Login string `json:"login"`
		} `json:"user"`
	} `json:"pull_request"`
}

// Detect classifies the current run from GITHUB_EVENT_NAME and the JSON
// payload at GITHUB_EVENT_PATH. It never fails: anything unreadable or
// unparseable degrades to Unknown.
func Detect() TriggerContext {
	name := os.Getenv("GITHUB_EVENT_NAME")
	switch {
	case strings.HasPrefix(name, "pull_request"):
		var p payload
		if b, err := os.ReadFile(os.Getenv("GITHUB_EVENT_PATH")); err == nil {
			_ = json.Unmarshal(b, &p)
		}
		if p.PullRequest.Number > 0 {
			return PullRequest{Number: p.PullRequest.Number, Author: p.PullRequest.User.Login}
		}
		return Unknown{}
	case name == "push":
		return Push{
			Commit: os.Getenv("GITHUB_SHA"),
			Branch: strings.TrimPrefix(os.Getenv("GITHUB_REF"), "refs/heads/"),
		}
	default:
		return Unknown{}
	}
}
