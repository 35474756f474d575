package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"four"}}]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	text, err := Generate(context.Background(), a, "2+2?")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "four" {
		t.Errorf("text = %q", text)
	}
}

func TestStreamFunc_AssemblesAndCallsBack(t *testing.T) {
	srv := httptest.NewServer(sseHandler(t,
		`data: {"delta":"a"}`,
		`data: {"delta":"b"}`,
		`data: {"delta":"c"}`,
		`data: [DONE]`,
	))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	var deltas []string
	text, err := StreamFunc(context.Background(), a, "spell abc", func(delta string) {
		deltas = append(deltas, delta)
	})
	if err != nil {
		t.Fatalf("StreamFunc: %v", err)
	}
	if text != "abc" {
		t.Errorf("assembled = %q", text)
	}
	if len(deltas) != 3 {
		t.Errorf("deltas = %v", deltas)
	}
}

func TestCollect_KeepsFragmentsBeforeError(t *testing.T) {
	ch := make(chan StreamChunk, 3)
	ch <- StreamChunk{Content: "kept "}
	ch <- StreamChunk{Content: "text"}
	ch <- StreamChunk{Err: errors.New("mid-stream failure")}
	close(ch)

	text, err := Collect(ch)
	if err == nil {
		t.Fatal("want error")
	}
	if text != "kept text" {
		t.Errorf("text = %q, want fragments before the error preserved", text)
	}
}

func TestUserMessage(t *testing.T) {
	msgs := UserMessage("hello")
	if len(msgs) != 1 || msgs[0].Role != "user" || msgs[0].Content != "hello" {
		t.Errorf("messages = %+v", msgs)
	}
}
