package config

import (
	"log"
	"os"
)

type Config struct {
	Port              string
	DBDSN             string
	LogFile           string
	JWTSecret         string
	MidtransServerKey string
	MidtransEnv       string // sandbox | production
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "nitrobrew.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./nitrobrew.log"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key" // dev fallback; set in production
	}
	mtKey := os.Getenv("MIDTRANS_SERVER_KEY")
	mtEnv := os.Getenv("MIDTRANS_ENV")
	if mtEnv == "" {
		mtEnv = "sandbox"
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, JWTSecret: secret, MidtransServerKey: mtKey, MidtransEnv: mtEnv}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s MIDTRANS_ENV=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.MidtransEnv)
	return cfg
}
