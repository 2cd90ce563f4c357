package main

import (
	"context"
	"strings"
	"testing"
)

func TestRun_UnsupportedDirection(t *testing.T) {
	err := run(context.Background(), nil, "sideways", 0)
	if err == nil {
		t.Fatal("ожидали ошибку для неизвестного направления")
	}
	if !strings.Contains(err.Error(), "unsupported direction") {
		t.Fatalf("err = %v", err)
	}
}
