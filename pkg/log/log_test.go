package log

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkLogger_Info(b *testing.B) {
	l := New(FTimestamp, io.Discard, "test", 0)
	for i := 0; i < b.N; i++ {
		l.Info("test")
	}
}

func BenchmarkStdlogger(b *testing.B) {
	l := log.New(io.Discard, "test", log.Ltime)
	for i := 0; i < b.N; i++ {
		l.Print("test")
	}
}

func Test_levelToString(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  string
	}{
		{"info", INFO, "INFO "},
		{"trace", TRACE, "TRACE"},
		{"error", ERROR, "ERROR"},
		{"unknown", 1337, "?????"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := levelToString(tt.level); got != tt.want {
				t.Errorf("levelToString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"trace", TRACE, false},
		{"DEBUG", DEBUG, false},
		{" info ", INFO, false},
		{"warn", WARN, false},
		{"warning", WARN, false},
		{"Error", ERROR, false},
		{"verbose", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownLevel), "ParseLevel(%q) error = %v", tt.in, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_writeOut(t *testing.T) {
	tests := []struct {
		name   string
		flags  int
		prefix string
		min    int
		log    func(l *Logger)
		want   string
	}{
		{"plain", 0, "", TRACE, func(l *Logger) { l.Info("hello") }, "[INFO ] hello\n"},
		{"prefixed", 0, "plugin", TRACE, func(l *Logger) { l.Warnf("%d things", 3) }, "[WARN ] [plugin] 3 things\n"},
		{"below min level", 0, "", INFO, func(l *Logger) { l.Debug("hidden") }, ""},
		{"trailing newlines trimmed", 0, "", TRACE, func(l *Logger) { l.Error("oops\r\n") }, "[ERROR] oops\n"},
		{"show file", FShowFile, "", TRACE, func(l *Logger) { l.Trace("x") }, "[TRACE] [log_test.go:"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(New(tt.flags, buf, tt.prefix, tt.min))
			if tt.flags&FShowFile != 0 {
				assert.True(t, strings.HasPrefix(buf.String(), tt.want), "got %q", buf.String())
				return
			}
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Timestamp(t *testing.T) {
	buf := &bytes.Buffer{}
	New(FTimestamp, buf, "", TRACE).Info("x")
	assert.Regexp(t, `^\[\d\d:\d\d:\d\d\.\d{3}\] \[INFO \] x\n$`, buf.String())
}

func TestLogger_Child(t *testing.T) {
	buf := &bytes.Buffer{}
	root := New(0, buf, "root", TRACE)
	child := root.Child("sub")
	child.Info("x")
	root.Info("y")

	assert.Equal(t, "root/sub", child.Prefix())
	assert.Equal(t, "root", root.Prefix())
	assert.Equal(t, "[INFO ] [root/sub] x\n[INFO ] [root] y\n", buf.String())
	assert.Equal(t, "sub", New(0, buf, "", TRACE).Child("sub").Prefix())
}

func TestLogger_Panic(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(0, buf, "", TRACE)
	assert.PanicsWithValue(t, "bad 1", func() { l.Panicf("bad %d", 1) })
	assert.Equal(t, "[PANIC] bad 1\n", buf.String())
}
