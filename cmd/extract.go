package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spigell/internmatch/internal/document"
	"github.com/spigell/internmatch/internal/extractor"
	"github.com/spigell/internmatch/internal/logger"
	"github.com/spigell/internmatch/internal/util"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract <resume-file>",
	Short: "Extract a candidate profile from a resume and print it as json",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		extract(args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extract(path string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	text, err := document.ExtractText(path)
	if err != nil {
		logger.Fatal("extracting resume text", zap.Error(err))
	}

	logger.Debug("resume text", zap.String("text", util.TruncateForLog(text, 500)))

	profile := extractor.Default().Extract(text)

	pretty, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		logger.Fatal("encoding the profile", zap.Error(err))
	}

	fmt.Println(string(pretty))
}
