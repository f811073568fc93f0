// Package speech reads article text aloud and transcribes spoken search
// queries through the OpenAI audio endpoints.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/emanuele-r/newspaper/internal/config"
)

// Synthesizer turns text into spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Recognizer turns recorded audio into text.
type Recognizer interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// Engine implements both Synthesizer and Recognizer against the OpenAI
// audio API.
type Engine struct {
	apiKey  string
	voice   string
	model   string
	client  *http.Client
	baseURL string
}

// New creates an Engine from the given speech config.
func New(cfg *config.SpeechConfig, apiKey string) (*Engine, error) {
	if cfg == nil || apiKey == "" {
		return nil, fmt.Errorf("speech not configured")
	}
	voice := cfg.Voice
	if voice == "" {
		voice = "alloy"
	}
	model := cfg.Model
	if model == "" {
		model = "tts-1"
	}
	return &Engine{
		apiKey:  apiKey,
		voice:   voice,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		baseURL: "https://api.openai.com",
	}, nil
}

type synthesizeRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
	Voice string `json:"voice"`
}

// Synthesize returns MP3 audio for the given text.
func (e *Engine) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("nothing to read aloud")
	}

	body, _ := json.Marshal(synthesizeRequest{Model: e.model, Input: text, Voice: e.voice})
	req, err := http.NewRequestWithContext(ctx, "POST", e.baseURL+"/v1/audio/speech", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("speech API %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe sends recorded audio to the transcription endpoint and
// returns the recognized text. The filename extension tells the API the
// audio container format.
func (e *Engine) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("no audio recorded")
	}
	if filename == "" {
		filename = "query.wav"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(audio); err != nil {
		return "", err
	}
	if err := mw.WriteField("model", "whisper-1"); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", e.baseURL+"/v1/audio/transcriptions", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("transcription API %d: %s", resp.StatusCode, string(b))
	}

	var tr transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	return tr.Text, nil
}
