package dataset

import (
	stdjson "encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/mapsbench/mapsload/internal/pkg/encoding/json"
	"github.com/mapsbench/mapsload/internal/pkg/filesystem"
	"github.com/mapsbench/mapsload/internal/pkg/utils/errors"
	"github.com/mapsbench/mapsload/internal/pkg/utils/orderedmap"
)

const (
	// AttackTask directory has its own format, see loadTaskDir.
	AttackTask = "asb"
	// AttackToolsFile is the only file read from the attack task directory in the standard layout.
	AttackToolsFile = "all_attack_tools.jsonl"
)

// Loader reads records from a "language/task/*.json(l)" directory tree.
// It is stateless between Load calls, all I/O goes through the Fs abstraction.
type Loader struct {
	fs     filesystem.Fs
	logger *zap.SugaredLogger
	layout Layout
}

// NewLoader creates a loader over the fs root.
// It fails if the root does not exist or is not a directory.
func NewLoader(fs filesystem.Fs, logger *zap.SugaredLogger, layout Layout) (*Loader, error) {
	if !fs.Exists(".") {
		return nil, errors.Errorf(`base path "%s" does not exist`, fs.BasePath())
	}
	if !fs.IsDir(".") {
		return nil, errors.Errorf(`base path "%s" is not a directory`, fs.BasePath())
	}
	return &Loader{fs: fs, logger: logger, layout: layout}, nil
}

// Load reads all records for the requested languages and tasks, in the caller-given order.
// Missing directories and malformed files are skipped with a warning.
// It fails only if the final sequence is empty.
func (l *Loader) Load(languages, tasks []string, addMetadata bool) (*Result, error) {
	res := &Result{}

	l.logger.Debugf(`Starting dataset loading from "%s"`, l.fs.BasePath())
	l.logger.Debugf(`Languages: %v`, languages)
	l.logger.Debugf(`Tasks: %v`, tasks)

	for _, language := range languages {
		if !l.fs.Exists(language) {
			l.warnf(res, language, `Language folder '%s' not found`, language)
			continue
		}
		if !l.fs.IsDir(language) {
			l.warnf(res, language, `Language path '%s' is not a directory`, language)
			continue
		}

		for _, task := range tasks {
			taskPath := filesystem.Join(language, task)
			if !l.fs.Exists(taskPath) {
				l.warnf(res, taskPath, `Task folder '%s' not found in language '%s'`, task, language)
				continue
			}
			if !l.fs.IsDir(taskPath) {
				l.warnf(res, taskPath, `Task path '%s' is not a directory in language '%s'`, task, language)
				continue
			}

			count := l.loadTaskDir(res, taskPath, language, task, addMetadata)
			l.logger.Debugf(`Loaded %d records for %s/%s`, count, language, task)
		}
	}

	if res.Len() == 0 {
		return nil, errors.New("no valid data found for the specified languages and tasks")
	}

	l.logger.Debugf(`Total records loaded: %d`, res.Len())
	return res, nil
}

// ListLanguages returns the immediate subdirectory names of the root, unordered.
func (l *Loader) ListLanguages() []string {
	return l.subDirs(".")
}

// ListTasks returns the immediate subdirectory names under the language.
// It returns an empty sequence if the language path is absent or not a directory.
func (l *Loader) ListTasks(language string) []string {
	if !l.fs.IsDir(language) {
		return []string{}
	}
	return l.subDirs(language)
}

func (l *Loader) subDirs(path string) []string {
	items, err := l.fs.ReadDir(path)
	if err != nil {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsDir() {
			out = append(out, item.Name())
		}
	}
	return out
}

// loadTaskDir reads one task directory and appends its records to the result.
//
// The attack task has two conventions: the verified layout holds standalone
// "*.json" documents, the standard layout holds one "all_attack_tools.jsonl"
// file. Every other task holds "*.json" documents.
func (l *Loader) loadTaskDir(res *Result, taskPath, language, task string, addMetadata bool) int {
	var records []Record
	switch {
	case task == AttackTask && l.layout == LayoutVerified:
		l.logger.Debugf(`Loading all JSON files from %s`, taskPath)
		records, _ = l.loadJSONFiles(res, taskPath)
	case task == AttackTask:
		path := filesystem.Join(taskPath, AttackToolsFile)
		if l.fs.IsFile(path) {
			records = l.loadJSONLFile(res, path)
			l.logger.Debugf(`Loaded %d records from %s`, len(records), AttackToolsFile)
		} else {
			l.warnf(res, taskPath, `File '%s' not found in %s`, AttackToolsFile, taskPath)
		}
	default:
		var files int
		records, files = l.loadJSONFiles(res, taskPath)
		if files == 0 {
			l.warnf(res, taskPath, `No JSON files found in %s`, taskPath)
		}
	}

	// Stamp mapping-shaped records with the source directory names
	if addMetadata {
		for _, record := range records {
			if record.IsMap() {
				record.Map.Set(LanguageKey, language)
				record.Map.Set(TaskKey, task)
			}
		}
	}

	res.Records = append(res.Records, records...)
	return len(records)
}

// loadJSONFiles reads every "*.json" file directly inside the dir, non-recursive.
func (l *Loader) loadJSONFiles(res *Result, dir string) (records []Record, files int) {
	matches, err := l.fs.Glob(filesystem.Join(dir, "*.json"))
	if err != nil {
		l.warnf(res, dir, `Failed to list JSON files in %s: %s`, dir, err)
		return nil, 0
	}

	for _, path := range matches {
		fileRecords := l.loadJSONFile(res, path)
		l.logger.Debugf(`Loaded %d records from %s`, len(fileRecords), filesystem.Base(path))
		records = append(records, fileRecords...)
	}
	return records, len(matches)
}

// loadJSONFile parses the whole file as one JSON document.
// An array yields one record per element, an object yields one record,
// any other top-level shape yields no records.
func (l *Loader) loadJSONFile(res *Result, path string) []Record {
	file, err := l.fs.ReadFile(path, "data")
	if err != nil {
		l.warnf(res, path, `Failed to load %s: %s`, path, err)
		return nil
	}

	content := strings.TrimSpace(file.Content)
	switch {
	case strings.HasPrefix(content, "{"):
		m := orderedmap.New()
		if err := json.DecodeString(content, m); err != nil {
			l.warnf(res, path, `Invalid JSON in %s: %s`, path, err)
			return nil
		}
		return []Record{MapRecord(m)}

	case strings.HasPrefix(content, "["):
		var elements []stdjson.RawMessage
		if err := json.DecodeString(content, &elements); err != nil {
			l.warnf(res, path, `Invalid JSON in %s: %s`, path, err)
			return nil
		}
		records := make([]Record, 0, len(elements))
		for _, element := range elements {
			record, err := decodeRecord(element)
			if err != nil {
				l.warnf(res, path, `Invalid JSON in %s: %s`, path, err)
				return nil
			}
			records = append(records, record)
		}
		return records

	default:
		if !json.Valid([]byte(content)) {
			l.warnf(res, path, `Invalid JSON in %s`, path)
			return nil
		}
		// A valid scalar document cannot become a record
		l.warnf(res, path, `Unexpected JSON structure in %s`, path)
		return nil
	}
}

// loadJSONLFile parses the file line by line, blank lines are skipped silently,
// a malformed line is skipped with a warning and does not abort the remaining lines.
// Lines can be arbitrarily long.
func (l *Loader) loadJSONLFile(res *Result, path string) []Record {
	file, err := l.fs.ReadFile(path, "data")
	if err != nil {
		l.warnf(res, path, `Failed to load %s: %s`, path, err)
		return nil
	}

	var records []Record
	for i, line := range strings.Split(file.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		record, err := decodeRecord([]byte(line))
		if err != nil {
			l.warnf(res, path, `Invalid JSON on line %d in %s: %s`, i+1, path, err)
			continue
		}
		records = append(records, record)
	}
	return records
}

// decodeRecord decodes one JSON value, objects keep their key order.
func decodeRecord(data []byte) (Record, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		m := orderedmap.New()
		if err := json.DecodeString(trimmed, m); err != nil {
			return Record{}, err
		}
		return MapRecord(m), nil
	}

	var value any
	if err := json.DecodeString(trimmed, &value); err != nil {
		return Record{}, err
	}
	return RawRecord(value), nil
}

// warnf collects the warning in the result and logs it.
func (l *Loader) warnf(res *Result, path, format string, a ...any) {
	w := res.warnf(path, format, a...)
	l.logger.Warn(w.Message)
}
