package cli

import (
	"context"
	"encoding/json"
	"fmt"
	goio "io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophstore/internal/client/api"
	"github.com/iudanet/gophstore/internal/client/session"
	"github.com/iudanet/gophstore/internal/client/storage/boltdb"
	"github.com/iudanet/gophstore/pkg/api"
)

// fakeIO реализует iocli.IO со сценарием вводов и буфером вывода
type fakeIO struct {
	out       strings.Builder
	inputs    []string
	passwords []string
}

func (f *fakeIO) Println(a ...any) {
	f.out.WriteString(fmt.Sprintln(a...))
}

func (f *fakeIO) Printf(format string, a ...any) {
	f.out.WriteString(fmt.Sprintf(format, a...))
}

func (f *fakeIO) ReadInput(prompt string) (string, error) {
	if len(f.inputs) == 0 {
		return "", fmt.Errorf("no scripted input for prompt %q", prompt)
	}
	in := f.inputs[0]
	f.inputs = f.inputs[1:]
	return in, nil
}

func (f *fakeIO) ReadPassword(prompt string) (string, error) {
	if len(f.passwords) == 0 {
		return "", fmt.Errorf("no scripted password for prompt %q", prompt)
	}
	pw := f.passwords[0]
	f.passwords = f.passwords[1:]
	return pw, nil
}

// newTestCli собирает Cli поверх httptest сервера и bolt хранилища
// во временной директории
func newTestCli(t *testing.T, handler http.Handler, io *fakeIO) (*Cli, *atomic.Int64) {
	t.Helper()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	st, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cli_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})

	apiClient := clientapi.NewClient(server.URL)

	store, err := session.New(context.Background(), apiClient, st)
	require.NoError(t, err)

	return New(apiClient, store, io), &requests
}

// TestRegister_PasswordMismatch_NoRequest: несовпадение подтверждения пароля
// дает локальную ошибку без единого сетевого запроса
func TestRegister_PasswordMismatch_NoRequest(t *testing.T) {
	io := &fakeIO{
		inputs:    []string{"Jane", "jane@mail.com"},
		passwords: []string{"Changeme1", "Different1"},
	}
	cli, requests := newTestCli(t, http.NotFoundHandler(), io)

	err := cli.Run(context.Background(), "register", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
	assert.Equal(t, int64(0), requests.Load())
}

func TestRegister_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/", func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jane", req.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.UserResponse{ID: 11, Email: req.Email, Name: req.Name})
	})

	io := &fakeIO{
		inputs:    []string{"Jane", "jane@mail.com"},
		passwords: []string{"Changeme1", "Changeme1"},
	}
	cli, requests := newTestCli(t, mux, io)

	err := cli.Run(context.Background(), "register", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), requests.Load())
	assert.Contains(t, io.out.String(), "Registration successful")
}

func TestRegister_WeakPassword_NoRequest(t *testing.T) {
	io := &fakeIO{
		inputs:    []string{"Jane", "jane@mail.com"},
		passwords: []string{"weak"},
	}
	cli, requests := newTestCli(t, http.NotFoundHandler(), io)

	err := cli.Run(context.Background(), "register", nil)
	require.Error(t, err)
	assert.Equal(t, int64(0), requests.Load())
}

func TestRun_UnknownCommand(t *testing.T) {
	io := &fakeIO{}
	cli, _ := newTestCli(t, http.NotFoundHandler(), io)

	err := cli.Run(context.Background(), "teleport", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

// TestPrintUsage_DefaultServerURL: текст помощи показывает реальный
// адрес API по умолчанию, а не устаревшую копию
func TestPrintUsage_DefaultServerURL(t *testing.T) {
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	PrintUsage()

	require.NoError(t, w.Close())
	os.Stdout = old

	out, err := goio.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), clientapi.DefaultBaseURL)
}

// TestProfileAvatar_NotAuthenticated_NoRequest: без сессии загрузка
// аватара отклоняется до единого сетевого вызова
func TestProfileAvatar_NotAuthenticated_NoRequest(t *testing.T) {
	io := &fakeIO{}
	cli, requests := newTestCli(t, http.NotFoundHandler(), io)

	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("png bytes"), 0600))

	err := cli.Run(context.Background(), "profile", []string{"avatar", path})
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
	assert.Equal(t, int64(0), requests.Load())
}

func TestStatus_Anonymous(t *testing.T) {
	io := &fakeIO{}
	cli, _ := newTestCli(t, http.NotFoundHandler(), io)

	require.NoError(t, cli.Run(context.Background(), "status", nil))
	assert.Contains(t, io.out.String(), "Not authenticated")
	assert.Contains(t, io.out.String(), "Cart: empty")
}
