package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophusers/internal/client/models"
)

var (
	// ErrInputAborted is returned when the input stream ends inside a form.
	ErrInputAborted = errors.New("input aborted")

	emailPattern = regexp.MustCompile(`[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Anything but y/yes counts as no.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := GetSimpleText(reader, prompt+" [y/N]", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// askField keeps prompting until parse accepts the answer. An empty answer
// keeps the pre-filled value when shown is non-empty; kept values are not
// re-checked since seeded records carry profile URLs in the email field.
func askField[T any](reader *bufio.Reader, w io.Writer, prompt, shown string, kept T, parse func(string) (T, error)) (T, error) {
	if shown != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, shown)
	}
	for {
		v, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			var zero T
			if errors.Is(err, io.EOF) {
				return zero, ErrInputAborted
			}
			return zero, err
		}
		if v == "" && shown != "" {
			return kept, nil
		}
		got, err := parse(v)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		return got, nil
	}
}

func parseRequired(name string) func(string) (string, error) {
	return func(v string) (string, error) {
		if v == "" {
			return "", fmt.Errorf("%s is required", name)
		}
		return v, nil
	}
}

func parseEmail(v string) (string, error) {
	if v == "" {
		return "", errors.New("email is required")
	}
	if !emailPattern.MatchString(v) {
		return "", errors.New("email is not valid")
	}
	return v, nil
}

func parseUmur(v string) (float64, error) {
	if v == "" {
		return 0, errors.New("umur is required")
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errors.New("umur must be a number")
	}
	if n < 1 {
		return 0, errors.New("umur must be at least 1")
	}
	return n, nil
}

func parseStatus(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "aktif", "active", "true", "1", "y", "yes":
		return true, nil
	case "tidak aktif", "inactive", "false", "0", "n", "no":
		return false, nil
	default:
		return false, errors.New("status must be Aktif or Tidak Aktif")
	}
}

// readForm collects a record. Fields of current are offered as defaults,
// which is how the edit form is pre-filled. The id is copied unchanged.
func readForm(reader *bufio.Reader, w io.Writer, current models.Record) (models.Record, error) {
	out := models.Record{ID: current.ID}
	var err error

	out.Nama, err = askField(reader, w, "Nama", current.Nama, current.Nama, parseRequired("nama"))
	if err != nil {
		return out, err
	}

	out.Email, err = askField(reader, w, "Email", current.Email, current.Email, parseEmail)
	if err != nil {
		return out, err
	}

	var umurShown string
	if current.Umur != 0 {
		umurShown = strconv.FormatFloat(current.Umur, 'f', -1, 64)
	}
	out.Umur, err = askField(reader, w, "Umur", umurShown, current.Umur, parseUmur)
	if err != nil {
		return out, err
	}

	out.Status, err = askField(reader, w, "Status (Aktif/Tidak Aktif)", current.StatusLabel(), current.Status, parseStatus)
	if err != nil {
		return out, err
	}

	return out, nil
}
