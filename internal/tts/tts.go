// Package tts turns briefing text into spoken audio via the OpenAI
// speech API.
package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/mynewsdev/mynews/internal/metrics"
	"github.com/mynewsdev/mynews/internal/retry"
)

// maxInputChars keeps the input under the speech API's 4096-character
// request limit.
const maxInputChars = 4000

type Client struct {
	client  *openai.Client
	timeout time.Duration
	log     *slog.Logger
}

func New(apiKey string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		client:  openai.NewClient(apiKey),
		timeout: timeout,
		log:     log,
	}
}

// Speak synthesizes German speech for the given text and returns MP3
// audio bytes.
func (c *Client) Speak(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("empty text")
	}
	text = truncateRunes(text, maxInputChars)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var audio []byte
	err := retry.WithRetry(ctx, retry.Config{MaxAttempts: 2, Delay: 2 * time.Second}, func() error {
		resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
			Model:          openai.TTSModel1,
			Input:          text,
			Voice:          openai.VoiceNova,
			ResponseFormat: openai.SpeechResponseFormatMp3,
			Speed:          1.0,
		})
		if err != nil {
			return err
		}
		defer resp.Close()

		audio, err = io.ReadAll(resp)
		if err != nil {
			return fmt.Errorf("read audio stream: %w", err)
		}
		return nil
	})
	if err != nil {
		metrics.Global.IncrementAIFailures()
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("speech generation timed out after %s: %w", c.timeout, err)
		}
		return nil, fmt.Errorf("speech generation failed: %w", err)
	}

	metrics.Global.IncrementAudioGenerated()
	c.log.Info("audio generated", slog.Int("bytes", len(audio)))
	return audio, nil
}

// truncateRunes cuts on a rune boundary.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
