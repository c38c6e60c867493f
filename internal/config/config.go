package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

var DefaultSubjects = []string{
	"English", "Mathematics", "Physics", "Biology", "Chemistry",
	"Government", "Economics", "Financial_Account",
}

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string // sqlite, postgres or memory
	DBDSN    string

	BlobBasePath string // artifacts: diagram map, atlas, reports
	StaticRoot   string // client files served at /
	BankDir      string // <subject>_questions.json

	DiagramSubject string
	DiagramMapKey  string
	AtlasKey       string

	Subjects      []string
	ExamQuestions int
	ExamDuration  time.Duration

	AuthHMACSecret  string
	EnableLocalAuth bool
	AdminUser       string
	AdminPassHash   string // bcrypt
	ExamCode        string // optional; empty accepts any code of 4+ chars

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

// FromEnv reads configuration from the environment only.
func FromEnv() Config {
	return build(env{})
}

// Load reads the YAML file named by CBT_CONFIG, if any, and applies the
// environment over it. File keys are the environment variable names.
func Load() (Config, error) {
	path := os.Getenv("CBT_CONFIG")
	if path == "" {
		return FromEnv(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	file, err := parseOverlay(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return build(env{file: file}), nil
}

func parseOverlay(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		key := strings.ToUpper(strings.TrimSpace(k))
		switch x := v.(type) {
		case nil:
		case []any:
			parts := make([]string, 0, len(x))
			for _, p := range x {
				parts = append(parts, fmt.Sprint(p))
			}
			out[key] = strings.Join(parts, ",")
		case map[string]any:
			return nil, fmt.Errorf("key %s: nested maps are not supported", k)
		default:
			out[key] = fmt.Sprint(x)
		}
	}
	return out, nil
}

func build(e env) Config {
	mode := Mode(e.or("MODE", string(ModeOffline)))
	return Config{
		Mode:     mode,
		HTTPAddr: e.or("HTTP_ADDR", ":8080"),

		DBDriver: e.or("DB_DRIVER", "sqlite"),
		DBDSN:    e.or("DB_DSN", ""),

		BlobBasePath: e.or("BLOB_BASE_PATH", "./data"),
		StaticRoot:   e.or("STATIC_ROOT", "./public"),
		BankDir:      e.or("BANK_DIR", "./data/subjects"),

		DiagramSubject: e.or("DIAGRAM_SUBJECT", "Mathematics"),
		DiagramMapKey:  e.or("DIAGRAM_MAP_KEY", "maps/math_diagram_map.json"),
		AtlasKey:       e.or("ATLAS_KEY", "maps/math_diagrams_centralized.svg"),

		Subjects:      e.csv("SUBJECTS", strings.Join(DefaultSubjects, ",")),
		ExamQuestions: e.int("EXAM_QUESTIONS", 10),
		ExamDuration:  time.Duration(e.int("EXAM_SECONDS", 3600)) * time.Second,

		AuthHMACSecret:  e.or("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		EnableLocalAuth: e.bool("ENABLE_LOCAL_AUTH", true),
		AdminUser:       e.or("ADMIN_USER", "admin"),
		AdminPassHash:   e.or("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		ExamCode:        e.or("EXAM_CODE", ""),

		CORSOriginsOnline:  e.csv("CORS_ORIGINS_ONLINE", "https://cbt.mindengage.ai"),
		CORSOriginsOffline: e.csv("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:8080"),
	}
}

// CORSOrigins picks the origin list for the configured mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

// env resolves a key from the process environment, then the overlay file.
type env struct{ file map[string]string }

func (e env) get(k string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return e.file[k]
}

func (e env) or(k, def string) string {
	v := e.get(k)
	if v == "" {
		return def
	}
	return v
}

func (e env) bool(k string, def bool) bool {
	switch e.get(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func (e env) int(k string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(e.get(k)))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (e env) csv(k, def string) []string {
	v := e.or(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
