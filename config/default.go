package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/color"
	"github.com/ttygif/ttygif/constant"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes the current and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.PlayerFactor, 1, "Speedup factor. Every delay between frames is divided by it.\nMust be a positive integer")
	register(key.TtyrecByteOrder, "little", "Byte order of the ttyrec frame headers.\nAvailable options are: little, big")
	register(key.OutputFilename, constant.DefaultOutput, "Animated image written by the output action")
	register(key.OutputFramesDir, "", "Directory for captured frames.\nA fresh temporary directory is used if not set")
	register(key.OutputKeepFrames, false, "Keep captured frames after encoding")
	register(key.CaptureBackend, "command", "Screen capture backend.\nAvailable options are: command, virtual")
	register(key.CaptureCommand, []string{"import", "-window", "{{ .Window }}", "{{ .File }}"}, "Command used to capture the screen.\n{{ .Window }} and {{ .File }} are substituted in every argument")
	register(key.CaptureWindow, "", "Window to capture with the command backend.\nResolved with capture.window_command if not set")
	register(key.CaptureWindowCommand, []string{"xdotool", "getactivewindow"}, "Command printing the id of the active window")
	register(key.CaptureCols, 0, "Columns of the virtual terminal. Current terminal width if 0")
	register(key.CaptureRows, 0, "Rows of the virtual terminal. Current terminal height if 0")
	register(key.CaptureFontSize, 14, "Font size in points used by the virtual backend")
	register(key.EncoderBinary, "ffmpeg", "Video encoder executable")
	register(key.EncoderPTSFactor, 2, "Presentation timestamp multiplier applied while encoding")
	register(key.EncoderFramerate, 0, "Input frame rate passed to the encoder. Encoder default if 0")
	register(key.InspectPreviewBytes, 40, "Number of payload bytes shown by the inspect action")
	register(key.HistorySave, true, "Remember rendered artifacts")
	register(key.RecordCommand, "", "Command recorded by \"ttygif record\". $SHELL if not set")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
