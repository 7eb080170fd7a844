package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	wireerror "github.com/msto63/wire/core/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	cfgFile, verbose = "", false
	formatJoin, formatPre, formatPost, formatLabels = false, "", "", ""
	replaceSorted, replaceDiff = false, false
	interpSet, interpEnv, interpMissing = nil, nil, ""
	interpExtract, interpSymbols = false, false
	evalPrecise = false
	matchFold = false
	tokenizeSplit, tokenizeFormat = false, `\1\n`
	iniSection, iniTo = "", "toml"
	versionRequire = ""
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"format", `\1 says hi to \2`, "Alice", "Bob"}, "Alice says hi to Bob\n"},
		{"format keeps unused placeholder", []string{"format", `\1-\3`, "a"}, "a-\x03\n"},
		{"format join", []string{"format", "--join", `[\1]`, "x", "y", "z"}, "[x][y][z]\n"},
		{"format labels", []string{"format", "--labels", "cfg.port", `\1=\2`, "80"}, "port=80\n"},
		{"replace insertion order", []string{"replace", "cat", "cat=dog", "ca=X"}, "Xt\n"},
		{"replace sorted", []string{"replace", "--sorted", "cat", "cat=dog", "ca=X"}, "dog\n"},
		{"interp", []string{"interp", "--set", "name=World", "Hello, $name!"}, "Hello, World!\n"},
		{"interp chained sets", []string{"interp", "--set", "name=ann", "--set", "greeting=hi $name", "$greeting"}, "hi ann\n"},
		{"interp escape", []string{"interp", "$$name"}, "$name\n"},
		{"interp missing empty", []string{"interp", "--missing", "empty", "[$nope]"}, "[]\n"},
		{"interp extract", []string{"interp", "--extract", "$a and $(b c)"}, "a\nb c\n"},
		{"eval", []string{"eval", "2 + 3 * 4"}, "14\n"},
		{"eval fraction", []string{"eval", "7", "/", "2"}, "3.5\n"},
		{"tokenize", []string{"tokenize", "a,b;;c", ",;"}, "a\nb\nc\n"},
		{"tokenize split", []string{"tokenize", "--split", "k=v", "="}, "k\n=\nv\n"},
		{"match", []string{"match", "report.txt", "*.txt"}, "true\n"},
		{"match fold", []string{"match", "-i", "README.MD", "*.md"}, "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code wireerror.Code
	}{
		{"unknown symbol", []string{"interp", "$nope"}, wireerror.CodeLookupFailed},
		{"cyclic symbol", []string{"interp", "--set", "a=$$a", "$a"}, wireerror.CodeCyclicReference},
		{"unterminated reference", []string{"interp", "$(open"}, wireerror.CodeInterpSyntax},
		{"bad missing policy", []string{"interp", "--missing", "skip", "x"}, wireerror.CodeInvalidInput},
		{"bad replacement pair", []string{"replace", "text", "nopair"}, wireerror.CodeInvalidFormat},
		{"empty replacement target", []string{"replace", "text", "=x"}, wireerror.CodeEmptyTarget},
		{"division by zero", []string{"eval", "1/0"}, wireerror.CodeEvalDivideByZero},
		{"eval syntax", []string{"eval", "1 +"}, wireerror.CodeEvalSyntax},
		{"unknown target format", []string{"ini", "convert", "missing.ini", "--to", "xml"}, wireerror.CodeInvalidFormat},
		{"missing file", []string{"ini", "show", "does-not-exist.ini"}, wireerror.CodeNotFound},
		{"version constraint", []string{"version", "--require", "< 0.1"}, wireerror.CodeValidationFailed},
		{"bad version constraint", []string{"version", "--require", "not a version"}, wireerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, wireerror.IsCode(err, tt.code), "got %s, want %s: %v", wireerror.GetCode(err), tt.code, err)
		})
	}

	t.Run("no match", func(t *testing.T) {
		out, err := execute(t, "match", "a.go", "*.txt")
		assert.ErrorIs(t, err, errSilent)
		assert.Equal(t, "false\n", out)
	})
}

func TestReplaceDiff(t *testing.T) {
	out, err := execute(t, "replace", "--diff", "a-b", "-=+")
	require.NoError(t, err)

	assert.Contains(t, out, `- "-"`)
	assert.Contains(t, out, `+ "+"`)
	assert.Contains(t, out, `  "a"`)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wire v"+Version)

	_, err = execute(t, "version", "--require", ">= 0.1, < 1.0")
	assert.NoError(t, err)
}

func TestINICommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.ini")
	content := "; test\r\nname=demo\r\n[database]\r\nhost=localhost\r\nport=5432\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Run("show", func(t *testing.T) {
		out, err := execute(t, "ini", "show", path)
		require.NoError(t, err)
		for _, want := range []string{"database.host", "localhost", "name", "demo"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("show section", func(t *testing.T) {
		out, err := execute(t, "ini", "show", "--section", "database", path)
		require.NoError(t, err)
		assert.Contains(t, out, "5432")
		assert.NotContains(t, out, "demo")
	})

	t.Run("convert yaml", func(t *testing.T) {
		out, err := execute(t, "ini", "convert", path, "--to", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "host: localhost")
	})

	t.Run("convert ini", func(t *testing.T) {
		out, err := execute(t, "ini", "convert", path, "--to", "ini")
		require.NoError(t, err)
		assert.Contains(t, out, "[database]\r\nhost=localhost\r\n")
	})

	t.Run("config symbols", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "wire.toml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("[symbols]\nuser = \"ann\"\n"), 0o644))

		out, err := execute(t, "--config", cfgPath, "interp", "hi $user")
		require.NoError(t, err)
		assert.Equal(t, "hi ann\n", out)
	})

	t.Run("env file symbols", func(t *testing.T) {
		envPath := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(envPath, []byte("DB_HOST=db.local\n"), 0o644))

		out, err := execute(t, "interp", "--env", envPath, "host=$DB_HOST")
		require.NoError(t, err)
		assert.Equal(t, "host=db.local\n", out)
	})
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`\1\9`, "\x01\x09"},
		{`a\nb\tc`, "a\nb\tc"},
		{`\\1`, `\1`},
		{`\q`, `\q`},
		{`end\`, `end\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, unescape(tt.in))
		})
	}
}
