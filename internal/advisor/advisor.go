// Package advisor asks an OpenAI-compatible chat model for the next move.
//
// The answer is streamed, concatenated and parsed into a board.Direction.
// The advisor only ever sees a copy of the grid; applying the move is up to
// the caller.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/vovakirdan/tui-tiles/internal/board"
)

// DefaultModel is the model used when none is given.
const DefaultModel = "gpt-4.1-nano"

// Models lists the selectable models in the order the UI cycles through them.
var Models = []string{DefaultModel, "o3-mini", "gemini-2.0-flash"}

// ErrNoAPIKey is returned by New when no API key is configured.
var ErrNoAPIKey = errors.New("advisor: no API key configured (set OPENAI_API_KEY)")

// Advisor suggests a move for a grid. ok is false when the model sent no answer.
type Advisor interface {
	Advise(ctx context.Context, grid board.Grid, model string) (dir board.Direction, ok bool, err error)
}

// Config configures the chat completion client.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration // 0 means no timeout beyond ctx
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client is an Advisor backed by the chat completions endpoint.
type Client struct {
	client  openai.Client
	timeout time.Duration
	logger  *log.Logger
}

// New builds a Client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &Client{
		client:  openai.NewClient(opts...),
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
	}, nil
}

// Advise streams the model's answer for grid and parses it.
func (c *Client) Advise(ctx context.Context, grid board.Grid, model string) (board.Direction, bool, error) {
	if model == "" {
		model = DefaultModel
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	prompt := Prompt(grid)
	c.logger.Debug("requesting advice", "model", model, "grid", FormatGrid(grid))

	stream := c.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	defer stream.Close()

	var sb strings.Builder
	for stream.Next() {
		for _, choice := range stream.Current().Choices {
			sb.WriteString(choice.Delta.Content)
		}
	}
	if err := stream.Err(); err != nil {
		return board.Left, false, fmt.Errorf("advisor: stream %s: %w", model, err)
	}

	answer := strings.ReplaceAll(sb.String(), "\n", "")
	c.logger.Debug("advice received", "model", model, "answer", answer)
	if strings.TrimSpace(answer) == "" {
		return board.Left, false, nil
	}

	dir, err := ParseAnswer(answer)
	if err != nil {
		return board.Left, false, err
	}
	return dir, true, nil
}

// Prompt builds the question sent to the model.
func Prompt(grid board.Grid) string {
	return fmt.Sprintf("What is the best move in 2048 game if current state is %s. Please just answer Right, Left, Up or Down.", FormatGrid(grid))
}

// FormatGrid renders a grid as nested comma-separated rows, e.g. [[2,0],[0,4]].
func FormatGrid(grid board.Grid) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range grid {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

// NextModel returns the model after current in Models, wrapping around.
// Unknown models restart at the first entry.
func NextModel(current string) string {
	for i, m := range Models {
		if m == current {
			return Models[(i+1)%len(Models)]
		}
	}
	return Models[0]
}
