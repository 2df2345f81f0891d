package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"

	"kintai-backend/internal/attendance"
	"kintai-backend/internal/masters"
	"kintai-backend/internal/platform/auth"
	"kintai-backend/internal/platform/db"
	"kintai-backend/internal/platform/requestid"
)

// フロントのビルド出力を埋め込む

//go:embed public
var embedded embed.FS

func main() {
	// 設定読み込み
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := db.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}

	// 動作モード取得
	mode := cfg.Mode
	log.Printf("[INFO] mode:%s\n", mode)

	if mode != "dev" && mode != "release" {
		fmt.Println("Usage: set mode to [dev|release] in config.yaml")
		return
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	ctx := context.Background()
	if err := db.InitSchema(ctx, conn); err != nil {
		panic(err)
	}
	if err := db.Seed(ctx, conn, cfg.Seed.Employees, cfg.Seed.Clients); err != nil {
		panic(err)
	}

	log.Printf("[INFO] connected to DB: %s", cfg.DB.Path)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestid.New())
	_ = r.SetTrustedProxies(nil)

	// CORS（従業員用・管理者用フロントは別オリジンでホストされる）
	origins := cfg.CORS.AllowOrigins
	if len(origins) == 0 && mode == "dev" {
		origins = []string{"http://localhost:3000"}
	}
	if len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition", requestid.HeaderKey},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// /api
	api := r.Group("/api")
	masters.RegisterRoutes(api, masters.NewService(conn))

	attSvc := attendance.NewService(conn)
	attendance.RegisterRoutes(api, attSvc)

	// 管理画面のパスワード確認（ゲートの外）
	auth.RegisterRoutes(api, cfg.Admin.Secret)

	// /api/admin 以下は共有シークレットでゲートする。未設定なら開放。
	admin := api.Group("/admin")
	if cfg.Admin.Secret != "" {
		admin.Use(auth.RequireAdmin(cfg.Admin.Secret))
	}
	attendance.RegisterAdminRoutes(admin, attSvc)

	sub, err := fs.Sub(embedded, "public")
	if err != nil {
		log.Fatal(err)
	}
	fileFS := http.FS(sub)

	r.NoRoute(func(c *gin.Context) {
		// API は対象外
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Status(http.StatusNotFound)
			return
		}

		reqPath := strings.TrimPrefix(c.Request.URL.Path, "/")
		if reqPath == "" {
			reqPath = "index.html"
		}

		// 実ファイルがあるならそれを返す（Content-Type を推測、キャッシュ付与）
		if f, err := fileFS.Open(reqPath); err == nil {
			defer f.Close()
			if ct := mime.TypeByExtension(path.Ext(reqPath)); ct != "" {
				c.Header("Content-Type", ct)
			}
			if !strings.HasSuffix(reqPath, "index.html") {
				c.Header("Cache-Control", "public, max-age=86400, immutable")
			}
			if fileInfo, err := f.Stat(); err == nil {
				http.ServeContent(c.Writer, c.Request, reqPath, fileInfo.ModTime(), f)
			} else {
				c.Status(http.StatusInternalServerError)
			}
			return
		}

		// なければ index.html にフォールバック
		if idx, err := fileFS.Open("index.html"); err == nil {
			defer idx.Close()
			c.Header("Content-Type", "text/html; charset=utf-8")
			if fileInfo, err := idx.Stat(); err == nil {
				http.ServeContent(c.Writer, c.Request, "index.html", fileInfo.ModTime(), idx)
			} else {
				c.Status(http.StatusInternalServerError)
			}
			return
		}

		c.Status(http.StatusNotFound)
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
