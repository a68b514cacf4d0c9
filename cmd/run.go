package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spigell/internmatch/internal/catalog"
	"github.com/spigell/internmatch/internal/document"
	"github.com/spigell/internmatch/internal/extractor"
	"github.com/spigell/internmatch/internal/filtering"
	"github.com/spigell/internmatch/internal/logger"
	"github.com/spigell/internmatch/internal/ranking"
	"github.com/spigell/internmatch/internal/util"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowPage         = "Show current page"
	PromptNextPage         = "Next page"
	PromptReportByCategory = "Report by category"
	PromptResultsToFile    = "Dump results to file"
	PromptQuit             = "Quit"

	defaultPageSize = 10
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Next action?",
	Items: []string{PromptShowPage, PromptNextPage, PromptReportByCategory, PromptResultsToFile, PromptQuit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the internmatch main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("catalog", "c", "", "internship catalog file (csv or json)")
	runCmd.Flags().StringP("resume", "r", "", "resume file (pdf, docx or plain text)")
	runCmd.Flags().BoolP("no-input", "y", false, "print the first page and exit without the interactive menu")
	runCmd.Flags().Int("page", 0, "page number to start from")
	runCmd.Flags().Int("page-size", 0, "listings per page")

	viper.BindPFlag("catalog", runCmd.Flags().Lookup("catalog"))
	viper.BindPFlag("resume", runCmd.Flags().Lookup("resume"))
	viper.BindPFlag("page.number", runCmd.Flags().Lookup("page"))
	viper.BindPFlag("page.size", runCmd.Flags().Lookup("page-size"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the internmatch", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Catalog == "" {
		logger.Fatal("catalog file is required",
			zap.String("hint", "set the --catalog flag, the 'catalog' key in the configuration file or the INTERNMATCH_CATALOG environment variable"),
		)
	}

	if config.Resume == "" && config.Profile == nil {
		logger.Fatal("resume file or a profile section is required to build a candidate profile")
	}

	listings, err := loadCatalog(config.Catalog)
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err))
	}

	logger.Info("loading the catalog",
		append(sourceFields(config), zap.Int("count", listings.Len()))...,
	)

	if listings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no listings in the catalog"))
		return
	}

	profile := buildProfile(config, logger)

	logger.Info("profile ready",
		zap.Strings("skills", profile.Skills),
		zap.String("location", profile.Location),
		zap.Int("experience_years", profile.ExperienceYears),
		zap.String("education_level", profile.EducationLevel),
	)

	results := recommend(config, profile, listings)

	if config.Filters != nil {
		results = filtering.Run(logger, filtering.Steps(*config.Filters), results)
	}

	if len(results) == 0 {
		logger.Info("exiting", zap.String("reason", "no listings left after filters"))
		return
	}

	pageSize, pageNumber := pageSettings(config)

	printPage(results, pageSize, pageNumber)

	if cmd.Flag("no-input").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		logger.Info("current list of recommendations", zap.Int("count", len(results)))

		if err := handleAction(action, logger, results, pageSize, &pageNumber); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, results []ranking.ScoredListing, pageSize int, pageNumber *int) error {
	switch action {
	case PromptShowPage:
		printPage(results, pageSize, *pageNumber)
		return nil
	case PromptNextPage:
		if *pageNumber < filtering.PageCount(len(results), pageSize) {
			*pageNumber++
		}
		printPage(results, pageSize, *pageNumber)
		return nil
	case PromptReportByCategory:
		pretty, _ := json.MarshalIndent(toListings(results).ReportByCategory(), "", "  ")
		logger.Info(string(pretty), zap.Int("recommendations count", len(results)))
		return nil
	case PromptResultsToFile:
		filename, err := util.DumpJSONToTmpFile(results, "internmatch-results-*.json")
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptQuit:
		logger.Info("exiting", zap.String("reason", "got quit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// buildProfile extracts a profile from the resume and applies overrides from
// the profile section of the config. A resume that cannot be read is a
// warning, not a failure: the overrides may carry enough on their own.
func buildProfile(config *Config, logger *zap.Logger) extractor.Profile {
	text := ""
	if config.Resume != "" {
		extracted, err := document.ExtractText(config.Resume)
		if err != nil {
			logger.Warn("extracting resume text, continuing with an empty resume", zap.Error(err))
		} else {
			text = extracted
		}
	}

	logger.Debug("resume text", zap.String("text", util.TruncateForLog(text, 500)))

	profile := newExtractor(config).Extract(text)

	if o := config.Profile; o != nil {
		if len(o.Skills) != 0 {
			profile.Skills = o.Skills
		}
		if o.Location != "" {
			profile.Location = o.Location
		}
		if o.ExperienceYears > 0 {
			profile.ExperienceYears = o.ExperienceYears
		}
		if o.EducationLevel != "" {
			profile.EducationLevel = o.EducationLevel
		}
		if o.PreferredCategory != "" {
			profile.PreferredCategory = o.PreferredCategory
		}
	}

	return profile
}

func newExtractor(config *Config) *extractor.Extractor {
	if config.Vocabulary == nil {
		return extractor.Default()
	}

	vocab := extractor.DefaultVocabulary()
	if len(config.Vocabulary.Skills) != 0 {
		vocab.Skills = config.Vocabulary.Skills
	}
	if len(config.Vocabulary.Locations) != 0 {
		vocab.Locations = config.Vocabulary.Locations
	}
	if len(config.Vocabulary.Degrees) != 0 {
		vocab.Degrees = config.Vocabulary.Degrees
	}

	return extractor.New(vocab)
}

// recommend scores the catalog and merges the local and the overall pools.
func recommend(config *Config, profile extractor.Profile, listings *catalog.Listings) []ranking.ScoredListing {
	weights := ranking.DefaultWeights()
	if config.Weights != nil {
		weights = *config.Weights
	}

	topLocal := ranking.DefaultTopLocal
	topOverall := ranking.DefaultTopOverall
	limit := 0
	if config.Recommend != nil {
		if config.Recommend.TopLocal > 0 {
			topLocal = config.Recommend.TopLocal
		}
		if config.Recommend.TopOverall > 0 {
			topOverall = config.Recommend.TopOverall
		}
		limit = config.Recommend.Limit
	}

	results := ranking.NewScorer(weights).Recommend(profile, listings, topLocal, topOverall)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results
}

func loadCatalog(path string) (*catalog.Listings, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return catalog.LoadJSON(path)
	}

	return catalog.LoadCSV(path)
}

func pageSettings(config *Config) (size, number int) {
	size, number = defaultPageSize, 1
	if config.Page != nil {
		if config.Page.Size > 0 {
			size = config.Page.Size
		}
		if config.Page.Number > 0 {
			number = config.Page.Number
		}
	}

	return size, number
}

func printPage(results []ranking.ScoredListing, pageSize, pageNumber int) {
	page := filtering.Paginate(results, pageSize, pageNumber)
	total := filtering.PageCount(len(results), pageSize)

	fmt.Printf("page %d of %d (%d recommendations)\n", pageNumber, total, len(results))

	for i, r := range page {
		fmt.Printf("%2d. [%3d] %s / %s / %s / %d INR / %s\n",
			(pageNumber-1)*pageSize+i+1, r.MatchScore, r.Title, r.Company, r.Location, r.Stipend, r.Duration,
		)
	}
}

func toListings(results []ranking.ScoredListing) *catalog.Listings {
	items := make([]catalog.Listing, 0, len(results))
	for _, r := range results {
		items = append(items, r.Listing)
	}

	return &catalog.Listings{Items: items}
}

func sourceFields(config *Config) []zap.Field {
	return logger.SourceFields(config.Catalog, config.Resume)
}
