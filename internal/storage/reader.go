package storage

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/engine"
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/model"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"github.com/valyala/fastjson"
)

// JSONLoader decodes a JSON array of rows into LogRecords.
// Files ending in .zst or .zstd are decompressed first.
type JSONLoader struct {
	decoder *zstd.Decoder
	parser  fastjson.ParserPool
}

func NewJSONLoader() (*JSONLoader, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &JSONLoader{decoder: dec}, nil
}

// Close releases the zstd decoder.
func (l *JSONLoader) Close() {
	l.decoder.Close()
}

// Load implements engine.LoaderFunc.
func (l *JSONLoader) Load(ctx context.Context, path string) ([]model.LogRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &engine.LoadError{Kind: engine.LoadNotFound, Path: path, Err: err}
		}
		return nil, &engine.LoadError{Kind: engine.LoadMalformed, Path: path, Err: err}
	}

	if e := zerolog.Ctx(ctx).Debug(); e.Enabled() {
		e.Str("path", path).
			Int("bytes", len(data)).
			Str("blake2b", Fingerprint(data)).
			Msg("input read")
	}

	if isCompressed(path) {
		data, err = l.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, &engine.LoadError{Kind: engine.LoadMalformed, Path: path, Err: err}
		}
	}

	records, err := l.Decode(data)
	if err != nil {
		return nil, &engine.LoadError{Kind: engine.LoadMalformed, Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &engine.LoadError{Kind: engine.LoadEmpty, Path: path}
	}
	return records, nil
}

// Decode parses raw JSON. The top level must be an array whose elements are
// arrays (fields in order) or objects (fields in key order).
func (l *JSONLoader) Decode(data []byte) ([]model.LogRecord, error) {
	p := l.parser.Get()
	defer l.parser.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	if v.Type() != fastjson.TypeArray {
		return nil, fmt.Errorf("expected a JSON array of logs, got %s", v.Type())
	}

	items, _ := v.Array()
	records := make([]model.LogRecord, 0, len(items))
	for i, item := range items {
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRecord(v *fastjson.Value) (model.LogRecord, error) {
	switch v.Type() {
	case fastjson.TypeArray:
		fields, _ := v.Array()
		rec := make(model.LogRecord, len(fields))
		for i, f := range fields {
			val, err := decodeField(f)
			if err != nil {
				return nil, fmt.Errorf("field %d: %w", i, err)
			}
			rec[i] = val
		}
		return rec, nil

	case fastjson.TypeObject:
		obj, _ := v.Object()
		rec := make(model.LogRecord, 0, obj.Len())
		var ferr error
		obj.Visit(func(key []byte, f *fastjson.Value) {
			if ferr != nil {
				return
			}
			val, err := decodeField(f)
			if err != nil {
				ferr = fmt.Errorf("field %q: %w", key, err)
				return
			}
			rec = append(rec, val)
		})
		if ferr != nil {
			return nil, ferr
		}
		return rec, nil

	default:
		return nil, fmt.Errorf("expected an array or object, got %s", v.Type())
	}
}

func decodeField(v *fastjson.Value) (model.Value, error) {
	switch v.Type() {
	case fastjson.TypeString:
		return model.String(string(v.GetStringBytes())), nil
	case fastjson.TypeNumber:
		return model.Number(v.GetFloat64()), nil
	case fastjson.TypeTrue:
		return model.Bool(true), nil
	case fastjson.TypeFalse:
		return model.Bool(false), nil
	case fastjson.TypeNull:
		return model.Null(), nil
	default:
		return model.Value{}, fmt.Errorf("%s is not a primitive value", v.Type())
	}
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".zst") || strings.HasSuffix(path, ".zstd")
}
