package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/skin"
)

// loadSkin resolves the configured skin, falling back to the default with a
// warning when it cannot be loaded.
func loadSkin(cfg cliConfig, logger *zap.Logger) skin.Skin {
	sk, err := skin.Load(cfg.Skin, cfg.SkinDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
		logger.Warn("skin fallback", zap.String("skin", cfg.Skin), zap.Error(err))
	}
	return sk
}
