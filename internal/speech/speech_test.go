package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emanuele-r/newspaper/internal/config"
)

func testEngine(srv *httptest.Server) *Engine {
	return &Engine{
		apiKey:  "secret",
		voice:   "alloy",
		model:   "tts-1",
		client:  srv.Client(),
		baseURL: srv.URL,
	}
}

func TestNewUnconfigured(t *testing.T) {
	if _, err := New(nil, "k"); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := New(&config.SpeechConfig{}, ""); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNewDefaults(t *testing.T) {
	e, err := New(&config.SpeechConfig{}, "k")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.voice != "alloy" || e.model != "tts-1" {
		t.Errorf("defaults = %q/%q", e.voice, e.model)
	}
}

func TestSynthesize(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("auth = %q", r.Header.Get("Authorization"))
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	audio, err := testEngine(srv).Synthesize(context.Background(), "Good evening.")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Errorf("audio = %q", audio)
	}
	if gotBody["input"] != "Good evening." || gotBody["voice"] != "alloy" {
		t.Errorf("request body = %v", gotBody)
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty text")
	}))
	defer srv.Close()

	if _, err := testEngine(srv).Synthesize(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("model field = %q", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "clip.wav" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "climate change"})
	}))
	defer srv.Close()

	got, err := testEngine(srv).Transcribe(context.Background(), []byte("RIFF..."), "clip.wav")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != "climate change" {
		t.Errorf("text = %q", got)
	}
}

func TestTranscribeEmptyAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty audio")
	}))
	defer srv.Close()

	if _, err := testEngine(srv).Transcribe(context.Background(), nil, "clip.wav"); err == nil {
		t.Fatal("expected error for empty audio")
	}
}

func TestErrorStatusIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid voice", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testEngine(srv).Synthesize(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("error %q should mention status code", err)
	}
}

func TestSynthesizeContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := testEngine(srv).Synthesize(ctx, "hello"); err == nil {
		t.Fatal("expected context deadline error")
	}
}
