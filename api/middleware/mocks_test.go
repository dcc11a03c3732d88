package middleware

import "sync"

// mockLogger is a mock implementation of the interfaces.Logger interface
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

func (m *mockLogger) log(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, message: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log("error", msg, fields) }

func (m *mockLogger) byMessage(msg string) []logEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []logEntry
	for _, e := range m.entries {
		if e.message == msg {
			out = append(out, e)
		}
	}
	return out
}
