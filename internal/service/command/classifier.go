// Package command classifies inbound chat messages into handler commands.
package command

import (
	"strings"

	"github.com/cndaip/chatroom/internal/model/message"
)

// Kind identifies which handler owns an inbound message.
type Kind int

const (
	Text Kind = iota
	Passthrough
	Movie
	News
	AI
	Mention
)

// 指令前缀。
const (
	MoviePrefix = "@电影 "
	NewsKeyword = "@新闻"
	AIPrefix    = "@川小农"
)

const (
	// richCardMarker flags payloads the sender already rendered client-side.
	richCardMarker = "<div class='weather-card'>"
	// defaultAIQuery substitutes an empty remainder after the AI prefix.
	defaultAIQuery = "你好"
)

// Command is the classification result. URL, Query and Target are populated
// for the matching kind only.
type Command struct {
	Kind   Kind
	URL    string
	Query  string
	Target string
}

// Classify picks the handler for an inbound message. Rules are evaluated in
// precedence order and the first match wins. online reports whether a
// nickname is currently connected and resolves mention targets; a mention
// of an offline name degrades to plain text.
func Classify(msgType, content string, online func(string) bool) Command {
	if msgType == message.TypeChat && strings.Contains(content, richCardMarker) {
		return Command{Kind: Passthrough}
	}

	if strings.HasPrefix(content, MoviePrefix) {
		url := ""
		if i := strings.Index(content, " "); i >= 0 {
			url = content[i+1:]
		}
		return Command{Kind: Movie, URL: url}
	}

	if strings.TrimSpace(content) == NewsKeyword {
		return Command{Kind: News}
	}

	// 历史上两种写法并存: 带空格与不带空格的前缀。按宽松规则匹配。
	if strings.HasPrefix(content, AIPrefix) {
		query := strings.TrimSpace(strings.TrimPrefix(content, AIPrefix))
		if query == "" {
			query = defaultAIQuery
		}
		return Command{Kind: AI, Query: query}
	}

	if target, ok := mentionTarget(content, online); ok {
		return Command{Kind: Mention, Target: target}
	}

	return Command{Kind: Text}
}

func mentionTarget(content string, online func(string) bool) (string, bool) {
	if online == nil || !strings.HasPrefix(content, "@") {
		return "", false
	}

	name := content[1:]
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	if name == "" || !online(name) {
		return "", false
	}
	return name, true
}
