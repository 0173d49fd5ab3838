package admin

import "embed"

//go:embed static/*
var assetsFS embed.FS
