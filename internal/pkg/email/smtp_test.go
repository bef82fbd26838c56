package email

import (
	"bufio"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMTP accepts one connection and replays a minimal SMTP dialogue. The
// message body is sent on the returned channel.
func fakeSMTP(t *testing.T) (string, <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	body := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		reply := func(s string) { conn.Write([]byte(s + "\r\n")) }
		reply("220 fake ready")

		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			cmd := strings.ToUpper(strings.TrimSpace(line))
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				reply("250 fake")
			case strings.HasPrefix(cmd, "MAIL"), strings.HasPrefix(cmd, "RCPT"):
				reply("250 OK")
			case cmd == "DATA":
				reply("354 go ahead")
				var sb strings.Builder
				for {
					l, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if l == ".\r\n" {
						break
					}
					sb.WriteString(l)
				}
				body <- sb.String()
				reply("250 queued")
			case cmd == "QUIT":
				reply("221 bye")
				return
			default:
				reply("502 unsupported")
			}
		}
	}()
	return ln.Addr().String(), body
}

func TestTimedSendMail_Delivers(t *testing.T) {
	addr, body := fakeSMTP(t)

	send := timedSendMail(time.Second)
	err := send(addr, nil, "hr@company.com", []string{"asha@company.com"}, []byte("Subject: hi\r\n\r\nhello\r\n"))
	require.NoError(t, err)

	select {
	case got := <-body:
		assert.Contains(t, got, "hello")
	case <-time.After(time.Second):
		t.Fatal("message not received")
	}
}

func TestTimedSendMail_SilentServerTimesOut(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		// never greet
		time.Sleep(2 * time.Second)
		conn.Close()
	}()

	start := time.Now()
	err = timedSendMail(100*time.Millisecond)(ln.Addr().String(), nil, "hr@company.com", []string{"asha@company.com"}, []byte("x"))
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetryBudgetFitsWriteTimeout(t *testing.T) {
	total := maxRetries * defaultTimeout
	for attempt := 1; attempt < maxRetries; attempt++ {
		total += backoff(attempt)
	}
	assert.Less(t, total, 30*time.Second)
	assert.Equal(t, 500*time.Millisecond, backoff(1))
	assert.Equal(t, time.Second, backoff(2))
}
