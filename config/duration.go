package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration 支持人类可读 JSON 的时长
//
//	{"slow_dispatch_threshold": "2ms"}
//	{"slow_dispatch_threshold": 2000000}   // 纳秒
//	{"slow_dispatch_threshold": ""}        // 0
type Duration time.Duration

// UnmarshalJSON 实现 json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case string:
		if val == "" {
			*d = 0
			return nil
		}
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", val, err)
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(int64(val))
	case nil:
		*d = 0
	default:
		return fmt.Errorf("duration must be a string (e.g. \"5ms\") or nanoseconds, got %T", v)
	}
	return nil
}

// MarshalJSON 实现 json.Marshaler，输出字符串形式
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Std 返回 time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String 返回字符串表示
func (d Duration) String() string {
	return time.Duration(d).String()
}
