package methodopts

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/routekit/svcconfig/pkg/svcconfig"
	"github.com/routekit/svcconfig/pkg/tree"
)

func entryNode(t *testing.T, text string) *tree.Node {
	t.Helper()
	n, err := tree.Parse([]byte(text))
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return n
}

func TestFactoryFullEntry(t *testing.T) {
	t.Parallel()

	opts, err := Factory(entryNode(t, `{
		"name": [{"service": "svc"}],
		"waitForReady": true,
		"timeout": "1.5s",
		"maxRequestMessageBytes": 4194304,
		"maxResponseMessageBytes": "1024"
	}`))
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if opts.WaitForReady == nil || !*opts.WaitForReady {
		t.Fatalf("waitForReady=%v want true", opts.WaitForReady)
	}
	if opts.Timeout != 1500*time.Millisecond {
		t.Fatalf("timeout=%v want 1.5s", opts.Timeout)
	}
	if opts.MaxRequestBytes != 4194304 || opts.MaxResponseBytes != 1024 {
		t.Fatalf("byte limits=%d/%d", opts.MaxRequestBytes, opts.MaxResponseBytes)
	}
}

func TestFactoryDefaults(t *testing.T) {
	t.Parallel()

	opts, err := Factory(entryNode(t, `{"name": [{"service": "svc"}], "retryPolicy": {}}`))
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if opts.WaitForReady != nil || opts.Timeout != 0 {
		t.Fatalf("unset fields populated: %+v", opts)
	}
	if opts.MaxRequestBytes != -1 || opts.MaxResponseBytes != -1 {
		t.Fatalf("byte limits=%d/%d want -1/-1", opts.MaxRequestBytes, opts.MaxResponseBytes)
	}
}

func TestFactoryRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want error
	}{
		{"not an object", `["x"]`, svcconfig.ErrWrongType},
		{"duplicate timeout", `{"timeout": "1s", "timeout": "2s"}`, svcconfig.ErrDuplicateField},
		{"waitForReady not bool", `{"waitForReady": "yes"}`, svcconfig.ErrWrongType},
		{"timeout not string", `{"timeout": 5}`, svcconfig.ErrWrongType},
		{"byte limit not scalar", `{"maxRequestMessageBytes": []}`, svcconfig.ErrWrongType},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Factory(entryNode(t, tt.text))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v want %v", err, tt.want)
			}
		})
	}

	for _, text := range []string{
		`{"timeout": "1.5"}`,
		`{"timeout": "s"}`,
		`{"timeout": "-1s"}`,
		`{"timeout": "NaNs"}`,
		`{"maxRequestMessageBytes": "abc"}`,
		`{"maxResponseMessageBytes": -1}`,
	} {
		if _, err := Factory(entryNode(t, text)); err == nil {
			t.Fatalf("factory %q: want error", text)
		}
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	cases := map[string]time.Duration{
		"0s":    0,
		"30s":   30 * time.Second,
		"0.25s": 250 * time.Millisecond,
	}
	for in, want := range cases {
		got, err := parseDuration(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q=%v want %v", in, got, want)
		}
	}
}

func TestBehaviorCopyIsDeep(t *testing.T) {
	t.Parallel()

	w := true
	orig := &Options{WaitForReady: &w, Timeout: time.Second}
	cp := Behavior().Copy(orig)
	if cp == orig || cp.WaitForReady == orig.WaitForReady {
		t.Fatalf("copy aliases the original")
	}
	*cp.WaitForReady = false
	if !*orig.WaitForReady {
		t.Fatalf("mutating the copy reached the original")
	}
	if Behavior().Copy(nil) != nil {
		t.Fatalf("nil copy must stay nil")
	}
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	w := false
	opts := &Options{
		WaitForReady:     &w,
		Timeout:          1500 * time.Millisecond,
		MaxRequestBytes:  2048,
		MaxResponseBytes: -1,
	}
	b, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"waitForReady":false,"timeout":"1.5s","maxRequestMessageBytes":2048}`
	if string(b) != want {
		t.Fatalf("json=%s want %s", b, want)
	}

	b, err = json.Marshal(&Options{MaxRequestBytes: -1, MaxResponseBytes: -1})
	if err != nil {
		t.Fatalf("marshal empty: %v", err)
	}
	if string(b) != "{}" {
		t.Fatalf("empty json=%s want {}", b)
	}
}
