package config

var _default = Default()

//初始化全局配置文件
func InitConfig(fname string) (cfg *Config, err error) {
	cfg, err = ReadDefault(fname)
	if err != nil {
		return
	}
	_default = cfg
	return
}

// Set replaces the global config.
func Set(cfg *Config) {
	_default = cfg
}

func Get() *Config {
	return _default
}
