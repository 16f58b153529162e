// Package commands parses and dispatches the command palette input.
package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/studyd/internal/model"
)

type Type string

const (
	TypeAdd   Type = "add"
	TypeDel   Type = "del"
	TypeEdit  Type = "edit"
	TypeDay   Type = "day"
	TypeNote  Type = "note"
	TypeGoto  Type = "goto"
	TypeReset Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Description string
	Category    model.Category
}

type DelArgs struct {
	TaskID string
}

type EditField string

const (
	EditFieldTime EditField = "time"
	EditFieldDesc EditField = "desc"
)

type EditArgs struct {
	TaskID string
	Field  EditField
	Value  string
}

type DayArgs struct {
	Day model.DayType
}

type NoteArgs struct {
	Text string
}

type GotoArgs struct {
	// DateKey is empty when Today is set.
	DateKey string
	Today   bool
}

type Command struct {
	Type Type
	Raw  string
	Add  *AddArgs
	Del  *DelArgs
	Edit *EditArgs
	Day  *DayArgs
	Note *NoteArgs
	Goto *GotoArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDel:
		return parseDel(input, args)
	case TypeEdit:
		return parseEdit(input, args)
	case TypeDay:
		return parseDay(input, args)
	case TypeNote:
		return Command{Type: TypeNote, Raw: input, Note: &NoteArgs{Text: strings.TrimSpace(strings.Join(args, " "))}}, nil
	case TypeGoto:
		return parseGoto(input, args)
	case TypeReset:
		return Command{Type: TypeReset, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	category := model.CategoryGeneral
	words := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(strings.ToLower(arg), "cat:") {
			parsed, ok := matchCategory(strings.TrimPrefix(arg, "cat:"))
			if !ok {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown category: %s", strings.TrimPrefix(arg, "cat:"))}
			}
			category = parsed
			continue
		}
		words = append(words, arg)
	}
	description := strings.TrimSpace(strings.Join(words, " "))
	if description == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a description"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Description: description, Category: category}}, nil
}

func parseDel(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "del requires a task id"}
	}
	return Command{Type: TypeDel, Raw: raw, Del: &DelArgs{TaskID: args[0]}}, nil
}

func parseEdit(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires a task id, a field (time or desc) and a value"}
	}
	field := EditField(strings.ToLower(args[1]))
	if field != EditFieldTime && field != EditFieldDesc {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown edit field: %s", args[1])}
	}
	value := strings.TrimSpace(strings.Join(args[2:], " "))
	if value == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires a value"}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{TaskID: args[0], Field: field, Value: value}}, nil
}

func parseDay(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "day requires weekday or weekend"}
	}
	day, err := model.ParseDayType(strings.ToLower(args[0]))
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown day type: %s", args[0])}
	}
	return Command{Type: TypeDay, Raw: raw, Day: &DayArgs{Day: day}}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a date or today"}
	}
	if strings.EqualFold(args[0], "today") {
		return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Today: true}}, nil
	}
	date, err := model.ParseDateKey(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid date: %s", args[0])}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{DateKey: model.DateKey(date)}}, nil
}

func matchCategory(name string) (model.Category, bool) {
	for _, category := range model.Categories() {
		if strings.EqualFold(strings.ReplaceAll(string(category), " ", ""), strings.ReplaceAll(name, " ", "")) {
			return category, true
		}
	}
	return "", false
}
