package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr     string
	GinMode     string
	MongoURI    string
	SecretToken string
	Production  bool
	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			appAddr = ":" + port
		} else {
			appAddr = ":9000"
		}
	}

	mongoURI := strings.TrimSpace(os.Getenv("MONGODB_URI"))
	if mongoURI == "" {
		mongoURI = "mongodb://127.0.0.1:27017"
	}

	var origins []string
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		for _, o := range strings.Split(env, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	} else {
		origins = []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"https://altquery.web.app",
			"https://altquery.firebaseapp.com",
		}
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		MongoURI:    mongoURI,
		SecretToken: strings.TrimSpace(os.Getenv("SECRET_TOKEN")),
		Production:  strings.TrimSpace(os.Getenv("APP_ENV")) == "production",
		CORSOrigins: origins,
	}
}
