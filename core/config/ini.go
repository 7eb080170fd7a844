// File: ini.go
// Title: INI Reader and Writer
// Description: Parses INI text into flat "section.key" maps and writes such
//              maps back as INI with CRLF line endings. Loaded INI files are
//              nested by section so dotted Config access works the same way
//              it does for TOML and YAML.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial INI support

package config

import (
	"strings"

	wireerror "github.com/msto63/wire/core/error"
	wireerrors "github.com/msto63/wire/core/errors"
	"github.com/msto63/wire/utils/mapx"
	"github.com/msto63/wire/utils/stringx"
)

// INIHeader is the comment line EncodeINI starts its output with
const INIHeader = "; generated by wire"

// ParseINI parses INI text into a flat map. Keys inside a [section] are
// stored as "section.key"; keys before the first section are stored bare.
// Text after ';' is a comment. Blank lines are skipped; any other line that
// is neither a section header nor key=value is an error.
func ParseINI(text string) (map[string]string, error) {
	result := make(map[string]string)
	section := ""

	for lineNo, line := range stringx.SplitLines(text) {
		line = stringx.Strip(stringx.LeftOf(line, ";"), "")
		if line == "" {
			continue
		}

		if stringx.StartsWith(line, "[") && stringx.EndsWith(line, "]") {
			section = stringx.Strip(line[1:len(line)-1], "")
			if section == "" || strings.ContainsAny(section, "[]=") {
				return nil, iniLineError(lineNo, line)
			}
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		key = stringx.Strip(key, "")
		if !ok || key == "" || strings.ContainsAny(key, "[]") {
			return nil, iniLineError(lineNo, line)
		}

		if section != "" {
			key = section + "." + key
		}
		result[key] = stringx.Strip(value, "")
	}

	return result, nil
}

func iniLineError(lineNo int, line string) *wireerror.Error {
	return wireerrors.InvalidFormat(wireerrors.ModuleConfig, "ParseINI", line, "[section] or key=value").
		WithDetail("line", lineNo+1)
}

// EncodeINI renders a flat "section.key" map as INI text. Keys without a
// section come first, followed by one block per section in key order.
func EncodeINI(values map[string]string) string {
	var sb strings.Builder
	sb.WriteString(INIHeader + "\r\n")

	section := ""
	for _, k := range sortedINIKeys(values) {
		sec, key, ok := strings.Cut(k, ".")
		if !ok {
			sb.WriteString(k + "=" + values[k] + "\r\n")
			continue
		}
		if sec != section {
			section = sec
			sb.WriteString("\r\n[" + section + "]\r\n")
		}
		sb.WriteString(key + "=" + values[k] + "\r\n")
	}

	return sb.String()
}

// sortedINIKeys orders global keys before sectioned keys
func sortedINIKeys(values map[string]string) []string {
	var global, sectioned []string
	for _, k := range mapx.SortedKeys(values) {
		if strings.Contains(k, ".") {
			sectioned = append(sectioned, k)
		} else {
			global = append(global, k)
		}
	}
	return append(global, sectioned...)
}

// nestINI turns "section.key" entries into per-section maps. A key whose
// section name collides with a global key stays flat.
func nestINI(flat map[string]string) map[string]interface{} {
	data := make(map[string]interface{})

	for _, k := range sortedINIKeys(flat) {
		sec, key, ok := strings.Cut(k, ".")
		if !ok {
			data[k] = flat[k]
			continue
		}

		switch existing := data[sec].(type) {
		case map[string]interface{}:
			existing[key] = flat[k]
		case nil:
			data[sec] = map[string]interface{}{key: flat[k]}
		default:
			data[k] = flat[k]
		}
	}

	return data
}
