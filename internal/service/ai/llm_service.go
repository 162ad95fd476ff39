// Package ai adapts the Ark chat model into the streaming completion
// collaborator consumed by the chat hub.
package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/cndaip/chatroom/internal/config"
)

// systemPrompt 固定的助手人设指令，每次补全都作为 system 轮发送。
const systemPrompt = `角色：你是一名计算机科学与技术专业的方案编写助手
功能：
1、你可以接收用户输入的信息或关键字，通过信息或关键字，你可以分析生成与之有关的10个文案主题，以供用户选择。主题列表形式如下：
[1]xxxxxxx
[2]uuuuuuuuu
……
2、你需要提示用户选择主题编号，并通过该主题编号对应的主题内容，生成两种风格的大纲，大纲需要包含一级、二级标题，风格如下：
风格一：专业风
风格二：学生风
3、你需要提示用户选择风格，并按风格生成与之对应的详细内容。`

// Service wraps the chat model behind a compiled single-turn chain.
type Service struct {
	chatModel model.ChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the completion service from configuration.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		chain:     runnable,
	}, nil
}

// Stream opens a completion for query and returns the ordered delta stream.
// The caller owns the reader and must Close it.
func (s *Service) Stream(ctx context.Context, query string) (*schema.StreamReader[*schema.Message], error) {
	stream, err := s.chain.Stream(ctx, map[string]any{"query": query})
	if err != nil {
		return nil, fmt.Errorf("failed to stream AI chain output: %w", err)
	}
	return stream, nil
}
