package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passcheck/passcheck-go/internal/config"
	"github.com/passcheck/passcheck-go/internal/strength"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name         string
		stdin        string
		args         []string
		wantStrength string
		wantScore    int
	}{
		{name: "argument", args: []string{"check", "aaaa1111"}, wantStrength: strength.VeryWeak, wantScore: 2},
		{name: "stdin", stdin: "Password1!\n", args: []string{"check"}, wantStrength: strength.Fair, wantScore: 5},
		{name: "stdin with crlf", stdin: "Tr0ub4dor&3Xyzq!\r\n", args: []string{"check"}, wantStrength: strength.VeryStrong, wantScore: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, append(tt.args, "--output", "json")...)
			require.NoError(t, err)

			var result strength.Result
			require.NoError(t, json.Unmarshal([]byte(out), &result))
			assert.Equal(t, tt.wantStrength, result.Strength)
			assert.Equal(t, tt.wantScore, result.Score)
		})
	}
}

func TestCheckCommandTextOutput(t *testing.T) {
	out, err := execute(t, "", "check", "aaaa1111")
	require.NoError(t, err)

	assert.Contains(t, out, "Very Weak")
	assert.Contains(t, out, "2/7")
	assert.Contains(t, out, "Avoid repeating characters")
}

func TestCheckCommandEmptyPassword(t *testing.T) {
	_, err := execute(t, "\n", "check")
	require.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantLen int
	}{
		{name: "default length", args: []string{"generate"}, wantLen: 16},
		{name: "explicit length", args: []string{"generate", "--length", "24"}, wantLen: 24},
		{name: "clamped up", args: []string{"generate", "-n", "2"}, wantLen: 8},
		{name: "clamped down", args: []string{"generate", "--length", "100"}, wantLen: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", append(tt.args, "-o", "json")...)
			require.NoError(t, err)

			var resp struct {
				Password string `json:"password"`
				Strength string `json:"strength"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Len(t, resp.Password, tt.wantLen)
			assert.Contains(t, strength.Labels(), resp.Strength)
		})
	}
}

func TestGenerateCommandTextOutput(t *testing.T) {
	out, err := execute(t, "", "generate")
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(out), "password")
	assert.Contains(t, out, "/7")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "check", "aaaa1111", "--log-level", "loud")
	require.Error(t, err)
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestRunServe(t *testing.T) {
	port := freePort(t)
	v := config.New()
	v.Set(config.KeyPort, port)
	v.Set(config.KeyShutdownTimeout, 2*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, v) }()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runServe did not return after cancel")
	}
}

func TestRunServeInvalidConfig(t *testing.T) {
	v := config.New()
	v.Set(config.KeyPort, 0)

	err := runServe(context.Background(), v)
	require.ErrorIs(t, err, config.ErrInvalidPort)
}
