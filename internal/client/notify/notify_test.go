package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/gophusers/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestConsole_Plain(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Success(context.Background(), "Data loaded from local storage")
	c.Failure(context.Background(), "Failed to add user")

	assert.Equal(t, "✓ Data loaded from local storage\n✗ Failed to add user\n", buf.String())
}

func TestConsole_StyledStillContainsMessage(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, true).Success(context.Background(), "ok")

	assert.Contains(t, buf.String(), "✓")
	assert.Contains(t, buf.String(), "ok")
}

func TestLog_ForwardsToLogger(t *testing.T) {
	var buf bytes.Buffer
	n := NewLog(logging.NewTextLogger(&buf, "info"))

	n.Success(context.Background(), "saved")
	n.Failure(context.Background(), "not saved")

	out := buf.String()
	assert.Contains(t, out, `level=INFO msg=saved notification=success`)
	assert.Contains(t, out, `level=WARN msg="not saved" notification=failure`)
}

type recorder struct{ got []string }

func (r *recorder) Success(_ context.Context, msg string) { r.got = append(r.got, "ok:"+msg) }
func (r *recorder) Failure(_ context.Context, msg string) { r.got = append(r.got, "fail:"+msg) }

func TestMulti_FansOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi{a, b}

	m.Success(context.Background(), "x")
	m.Failure(context.Background(), "y")

	assert.Equal(t, []string{"ok:x", "fail:y"}, a.got)
	assert.Equal(t, a.got, b.got)
}
