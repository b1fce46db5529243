package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "message only",
			err:      &AppError{Message: "boom"},
			expected: "boom",
		},
		{
			name:     "code and component",
			err:      NewConfigError(ErrCodeConfigInvalid, "bad port").WithComponent("config"),
			expected: "[ERR_CONFIG_INVALID] component:config bad port",
		},
		{
			name:     "with cause",
			err:      WrapIO(fmt.Errorf("no such file"), ErrCodeFileNotFound, "read failed"),
			expected: "[ERR_FILE_NOT_FOUND] read failed: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_IsAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("listen tcp :80: bind: permission denied")
	err := WrapNetwork(cause, ErrCodeServerStart, "server failed")

	assert.True(t, errors.Is(err, &AppError{Type: ErrorTypeNetwork, Code: ErrCodeServerStart}))
	assert.False(t, errors.Is(err, &AppError{Type: ErrorTypeConfig, Code: ErrCodeServerStart}))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, IsRecoverable(err))
	assert.False(t, IsRecoverable(NewConfigError(ErrCodeConfigInvalid, "bad")))
	assert.False(t, IsRecoverable(cause))
}

func TestErrInvalidPath(t *testing.T) {
	cause := fmt.Errorf("path contains traversal: ../x")
	err := ErrInvalidPath("../x", cause)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.True(t, HasCode(fmt.Errorf("site config: %w", err), ErrCodeInvalidPath))
	assert.Equal(t, "[ERR_INVALID_PATH] invalid path ../x: path contains traversal: ../x", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeIO, "X", "y"))

	base := NewConfigError(ErrCodeConfigInvalid, "invalid").WithComponent("config")
	wrapped := WrapIO(base, ErrCodeFileNotFound, "loading")
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorTypeIO, wrapped.Type)
	assert.Equal(t, "config", wrapped.Component)
	assert.Equal(t, base, errors.Unwrap(wrapped))

	plain := fmt.Errorf("plain")
	config := WrapConfig(plain, "C", "m")
	assert.Equal(t, ErrorTypeConfig, config.Type)
	assert.False(t, config.Recoverable)
	assert.Equal(t, plain, errors.Unwrap(config))
}

func TestFormatErrorWithSuggestions(t *testing.T) {
	assert.Empty(t, FormatErrorWithSuggestions(nil))
	assert.Equal(t, "plain", FormatErrorWithSuggestions(fmt.Errorf("plain")))

	app := NewConfigError(ErrCodeConfigInvalid, "bad port")
	assert.Equal(t, app.Error(), FormatErrorWithSuggestions(fmt.Errorf("load: %w", app)))

	field := NewFieldValidationError("phone", KindInvalidFormat, "123", "Некорректный номер", "Use at least 10 characters")
	formatted := FormatErrorWithSuggestions(field)
	assert.Contains(t, formatted, "Некорректный номер")
	assert.Contains(t, formatted, "Suggestions:")
	assert.Contains(t, formatted, "Use at least 10 characters")

	enhanced := NewEnhancedError("Failed to load configuration", app, []ErrorSuggestion{
		{Title: "Check the file", Command: "cat .bizconsult.yml"},
	})
	formatted = FormatErrorWithSuggestions(fmt.Errorf("root: %w", enhanced))
	assert.True(t, strings.HasPrefix(formatted, "Failed to load configuration: [ERR_CONFIG_INVALID] bad port"), formatted)
	assert.Contains(t, formatted, "Run: cat .bizconsult.yml")
}

func TestFieldValidationError(t *testing.T) {
	err := MissingField("name", "Введите имя")

	assert.Equal(t, "name", err.Field())
	assert.Equal(t, KindMissingField, err.Kind())
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "Введите имя")

	app := InvalidFormat("email", "abc", "Некорректный email").ToAppError()
	assert.Equal(t, "ERR_FIELD_EMAIL", app.Code)
	assert.Equal(t, "invalid_format", app.Context["kind"])
}

func TestValidationErrorCollection(t *testing.T) {
	var vec ValidationErrorCollection
	assert.False(t, vec.HasErrors())
	assert.Equal(t, "no validation errors", vec.Error())
	assert.Nil(t, vec.ToAppError())

	vec.Add(MissingField("phone", "Введите телефон"))
	assert.Contains(t, vec.Error(), "phone")

	vec.Add(MissingField("email", "Введите email"))
	assert.Equal(t, "validation failed with 2 errors", vec.Error())
	assert.Equal(t, []string{"email", "phone"}, vec.Fields())

	app := vec.ToAppError()
	require.NotNil(t, app)
	assert.Equal(t, ErrCodeValidationFailed, app.Code)
	assert.Len(t, app.Context, 2)
}

func TestCombineErrors(t *testing.T) {
	assert.NoError(t, CombineErrors(nil, nil))

	single := fmt.Errorf("one")
	assert.Equal(t, single, CombineErrors(nil, single))

	combined := CombineErrors(fmt.Errorf("a"), fmt.Errorf("b"))
	var ae *AppError
	require.True(t, errors.As(combined, &ae))
	assert.Equal(t, 2, ae.Context["error_count"])
}

func TestEnhancedError(t *testing.T) {
	cause := fmt.Errorf("listen tcp :8080: bind: address already in use")
	suggestions := ServerStartError(cause, 8080, &SuggestionContext{})
	require.NotEmpty(t, suggestions)

	err := NewEnhancedError("Failed to start server on port 8080", cause, suggestions)
	assert.True(t, strings.HasPrefix(err.Error(), "Failed to start server on port 8080"))
	assert.Contains(t, err.Error(), "bizconsult serve --port 8081")
	assert.NotContains(t, err.Error(), "Change the configured port")
	assert.Equal(t, cause, errors.Unwrap(err))

	withConfig := ServerStartError(cause, 8080, &SuggestionContext{ConfigPath: "site.yml"})
	assert.Equal(t, "Set server.port in site.yml", withConfig[len(withConfig)-1].Description)

	assert.Equal(t, "plain title", FormatSuggestions("plain title", nil))
}

func TestConfigurationError_Suggestions(t *testing.T) {
	suggestions := ConfigurationError("site.lang: unknown tag", nil)

	var titles []string
	for _, s := range suggestions {
		titles = append(titles, s.Title)
	}
	assert.Contains(t, titles, "Use a BCP 47 language tag")
	assert.Equal(t, "cat .bizconsult.yml", suggestions[0].Command)

	suggestions = ConfigurationError("invalid assets_dir", &SuggestionContext{ConfigPath: "custom.yml", AssetsDir: "../web"})
	assert.Equal(t, "cat custom.yml", suggestions[0].Command)
	assert.Equal(t, "ls -la ../web", suggestions[len(suggestions)-1].Command)
}

type recordingLogger struct {
	errors []string
	warns  []string
}

func (l *recordingLogger) Error(_ context.Context, err error, msg string, _ ...interface{}) {
	l.errors = append(l.errors, msg)
}

func (l *recordingLogger) Warn(_ context.Context, err error, msg string, _ ...interface{}) {
	l.warns = append(l.warns, msg)
}

func TestErrorHandler_SkipsFieldErrors(t *testing.T) {
	logger := &recordingLogger{}
	handler := NewErrorHandler(logger)
	ctx := context.Background()

	handler.Handle(ctx, nil)
	handler.Handle(ctx, MissingField("name", "Введите имя"))
	assert.Empty(t, logger.errors)
	assert.Empty(t, logger.warns)

	handler.Handle(ctx, WrapNetwork(fmt.Errorf("address already in use"), ErrCodeServerStart, "retry"))
	handler.Handle(ctx, NewInternalError(ErrCodeInternalError, "bad", nil))
	handler.Handle(ctx, fmt.Errorf("generic"))

	assert.Len(t, logger.warns, 1)
	assert.Len(t, logger.errors, 2)
}

func TestHasCode(t *testing.T) {
	err := WrapNetwork(fmt.Errorf("address already in use"), ErrCodeServerStart, "failed to bind")
	assert.True(t, HasCode(err, ErrCodeServerStart))
	assert.True(t, HasCode(fmt.Errorf("serve: %w", err), ErrCodeServerStart))
	assert.False(t, HasCode(err, ErrCodeConfigInvalid))
	assert.False(t, HasCode(fmt.Errorf("plain"), ErrCodeServerStart))
	assert.False(t, HasCode(nil, ErrCodeServerStart))
}
