// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 节点配置, 对应 arcade.toml
type Config struct {
	Title   string   `toml:"Title"`
	Log     *Log     `toml:"log"`
	Store   *Store   `toml:"store"`
	Metrics *Metrics `toml:"metrics"`
	Exec    *Exec    `toml:"exec"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 状态存储配置
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Metrics 统计配置
type Metrics struct {
	EnableMetrics bool `toml:"enableMetrics"`
	// 单位: 秒
	Duration int64 `toml:"duration"`
}

// Exec 执行器配置
type Exec struct {
	RngName         string `toml:"rngName"`
	NumberGuessName string `toml:"numberGuessName"`
	// 结算代币的 symbol
	Symbol string `toml:"symbol"`
	// 存活高度低于 BumpThreshold 时延长到 BumpLedgers
	BumpLedgers   int64 `toml:"bumpLedgers"`
	BumpThreshold int64 `toml:"bumpThreshold"`
}

// ExecName 默认执行器名在本节点上的实际名字
func (e *Exec) ExecName(name string) string {
	switch name {
	case RngX:
		return e.RngName
	case NumberGuessX:
		return e.NumberGuessName
	}
	return name
}

// DefaultConfig 默认配置, 内存数据库
func DefaultConfig() *Config {
	cfg := &Config{}
	fillDefault(cfg)
	return cfg
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Log.Loglevel == "" {
		cfg.Log.Loglevel = "error"
	}
	if cfg.Log.LogConsoleLevel == "" {
		cfg.Log.LogConsoleLevel = "error"
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "state"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Store.DbCache <= 0 {
		cfg.Store.DbCache = 64
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.Duration <= 0 {
		cfg.Metrics.Duration = 60
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.RngName == "" {
		cfg.Exec.RngName = RngX
	}
	if cfg.Exec.NumberGuessName == "" {
		cfg.Exec.NumberGuessName = NumberGuessX
	}
	if cfg.Exec.Symbol == "" {
		cfg.Exec.Symbol = DefaultSymbol
	}
	if cfg.Exec.BumpLedgers <= 0 {
		cfg.Exec.BumpLedgers = PersistentBumpLedgers
	}
	if cfg.Exec.BumpThreshold <= 0 || cfg.Exec.BumpThreshold > cfg.Exec.BumpLedgers {
		cfg.Exec.BumpThreshold = cfg.Exec.BumpLedgers * PersistentBumpThreshold / PersistentBumpLedgers
	}
}

// InitCfgString 解析 toml 字符串, 未配置项使用默认值
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	fillDefault(&cfg)
	return &cfg, nil
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return InitCfgString(string(data))
}
