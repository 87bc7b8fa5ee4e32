package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cornmaze/internal/maze"
	"github.com/vovakirdan/cornmaze/internal/registry"
)

func TestASCIIEncoder(t *testing.T) {
	enc, err := registry.Create("ascii")
	if err != nil {
		t.Fatalf("ascii format not registered: %v", err)
	}

	out, err := enc.Encode(maze.Generate(1, 1))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expected := strings.Join([]string{
		"#######",
		"#P#...#",
		"#.C##c#",
		"#.#...#",
		"#.#.#.#",
		"#.c.#c#",
		"#######",
	}, "\n") + "\n"

	if string(out) != expected {
		t.Errorf("ascii output:\n%s\nexpected:\n%s", out, expected)
	}
}

func TestStyledEncoder(t *testing.T) {
	enc, err := registry.Create("styled")
	if err != nil {
		t.Fatalf("styled format not registered: %v", err)
	}

	out, err := enc.Encode(maze.Generate(42, 3))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(string(out), "Maze 3") {
		t.Errorf("styled output should include the level name:\n%s", out)
	}
}
