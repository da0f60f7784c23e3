package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionIDCtxKey(t *testing.T) {
	if SessionIDCtxKey.String() != "sessionID" {
		t.Errorf("expected 'sessionID', got '%s'", SessionIDCtxKey.String())
	}
}

func TestGetSessionIDFromContext_Success(t *testing.T) {
	ctx := WithSessionID(context.Background(), "abc")

	id, ok := GetSessionIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "abc" {
		t.Errorf("expected id=abc, got %s", id)
	}
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	id, ok := GetSessionIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if id != "" {
		t.Errorf("expected empty id, got %s", id)
	}
}

func TestGetSessionIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, 42)

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSessionIDFromContext_Empty(t *testing.T) {
	ctx := WithSessionID(context.Background(), "")

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty id, got true")
	}
}
