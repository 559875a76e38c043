package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/leoavce/hrd-dashboard/internal/config"
	"github.com/leoavce/hrd-dashboard/internal/server"
	"github.com/leoavce/hrd-dashboard/internal/util"
)

var (
	port    = flag.Int("port", 0, "서비스 포트 (config.toml 에 port 가 명시돼 있으면 무시)")
	devMode = flag.Bool("dev", false, "개발 모드")
	dataDir = flag.String("dataDir", "", "데이터 디렉터리 (설정 파일보다 우선)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  HRD 대시보드 - 교육 프로그램 관리 도구")
	fmt.Println("==========================================")

	// .env 가 있으면 환경 변수로 읽어들인다 (관리자 계정 등)
	_ = godotenv.Load()

	// 설정 로드
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("설정 로드 실패, 기본 설정으로 진행: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 명령행 인자 우선 적용
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	if cfg.Auth.AdminPassword == "" {
		fmt.Println("주의: 관리자 비밀번호가 없어 계정 부트스트랩을 건너뜁니다 (HRD_ADMIN_PASSWORD)")
	}

	// 서버 생성 (DB 초기화 + 시드 + 관리자 부트스트랩 포함)
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("서버 초기화 실패: %v", err)
	}
	defer srv.Close()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("서비스 시작, 포트 %d 수신 대기...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("서비스 시작 실패: %v", err)
		}
	}()

	// 브라우저 열기
	if !cfg.Server.DevMode {
		fmt.Printf("브라우저를 엽니다: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("브라우저를 자동으로 열지 못했습니다. 직접 접속해주세요: %s\n", url)
		}
	} else {
		fmt.Printf("개발 모드: %s 로 접속하세요\n", url)
	}

	fmt.Println("\nCtrl+C 로 종료...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n서비스를 종료합니다...")
}
