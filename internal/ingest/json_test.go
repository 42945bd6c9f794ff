package ingest

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"string", `"user1"`, []string{"user1"}},
		{"array", `["user1","user2","user1"]`, []string{"user1", "user2", "user1"}},
		{"empty array", `[]`, nil},
		{"object value", `{"value":"a"}`, []string{"a"}},
		{"object values", `{"values":["a","b"]}`, []string{"a", "b"}},
		{"object both", `{"value":"a","values":["b"]}`, []string{"a", "b"}},
		{"mixed array", `[{"value":"a"},"b",{"values":["c","d"]}]`, []string{"a", "b", "c", "d"}},
		{"escapes", `["line\nbreak","é"]`, []string{"line\nbreak", "é"}},
		{"empty string", `[""]`, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Values([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValuesUnsupportedShape(t *testing.T) {
	tests := []string{
		`42`,
		`null`,
		`[1,2]`,
		`{"value":1}`,
		`{"values":"a"}`,
		`{"values":["a",2]}`,
		`{"other":"a"}`,
		`[["nested"]]`,
	}

	for _, body := range tests {
		t.Run(body, func(t *testing.T) {
			_, err := Values([]byte(body))
			if !errors.Is(err, ErrUnsupportedShape) {
				t.Errorf("expected ErrUnsupportedShape, got %v", err)
			}
		})
	}
}

func TestValuesInvalidJSON(t *testing.T) {
	_, err := Values([]byte(`["a",`))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("syntax error reported as shape error: %v", err)
	}
}

func TestDecoderConcurrent(t *testing.T) {
	d := NewDecoder()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := d.Values([]byte(`["x","y"]`))
				if err != nil || len(got) != 2 {
					t.Errorf("got %q, %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
