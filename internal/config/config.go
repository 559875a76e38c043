package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 앱 설정
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Auth   AuthConfig   `toml:"auth"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 데이터 설정
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// AuthConfig 부트스트랩 관리자 계정 설정
// 비밀번호는 config.toml 대신 환경 변수로 넘기는 걸 권장한다.
type AuthConfig struct {
	AdminEmail    string `toml:"admin_email"`
	AdminPassword string `toml:"admin_password"`
}

// LoadConfigInfo 설정 로드 메타 정보
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 기본 설정
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20841,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Auth: AuthConfig{
			AdminEmail: "admin@local",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 실행 파일이 있는 디렉터리
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 실행 파일 옆 config.toml 로드 + 메타 정보 반환
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 실행 파일 위치를 못 찾으면 현재 디렉터리 사용
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 설정 파일이 없으면 기본 설정 사용
			applyEnvOverrides(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config)
	return config, info, nil
}

// applyEnvOverrides 환경 변수 우선 적용 (로컬 실행 / E2E 용)
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("HRD_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("HRD_ADMIN_EMAIL"); v != "" {
		config.Auth.AdminEmail = v
	}
	if v := os.Getenv("HRD_ADMIN_PASSWORD"); v != "" {
		config.Auth.AdminPassword = v
	}
}

// LoadConfig config.toml 로드
// 설정 파일은 실행 파일과 같은 디렉터리에 둔다.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig config.toml 저장
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 데이터 디렉터리 보장
// 절대 경로가 아니면 실행 파일 옆에 만든다.
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	// 하위 디렉터리: 업로드 자산
	if err := os.MkdirAll(filepath.Join(dataDir, "files"), 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
