package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smartscreen/resume-screener/internal/ai"
	"github.com/smartscreen/resume-screener/internal/ai/gemini"
	"github.com/smartscreen/resume-screener/internal/analysis"
	"github.com/smartscreen/resume-screener/internal/catalog"
	"github.com/smartscreen/resume-screener/internal/extract"
	"github.com/smartscreen/resume-screener/internal/logger"
	"github.com/smartscreen/resume-screener/internal/secrets"
)

const (
	PromptShowCourses  = "Show recommended courses"
	PromptShowVideos   = "Show resume and interview videos"
	PromptDumpReport   = "Dump report to file"
	PromptExit     = "Exit"
	defaultTimeout = 30 * time.Second
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowCourses, PromptShowVideos, PromptDumpReport, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a resume file against a target role",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

// report is the full JSON document written by the dump action and --output.
type report struct {
	Role   *catalog.RoleProfile `json:"role"`
	Result *analysis.Result     `json:"result"`
	Advice *ai.ResumeAdvice     `json:"advice,omitempty"`
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("category", "c", "", "role category from the catalog. Prompted interactively when unset.")
	analyzeCmd.Flags().StringP("role", "r", "", "target role from the catalog. Prompted interactively when unset.")
	analyzeCmd.Flags().StringP("output", "o", "", "write the full JSON report to this file")
	analyzeCmd.Flags().DurationP("timeout", "t", defaultTimeout, "wall-clock budget for the analysis")
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-screener", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	cat, err := loadCatalog(config)
	if err != nil {
		logger.Fatal("loading the role catalog", zap.Error(err))
	}

	profile, err := selectProfile(cmd, cat)
	if err != nil {
		logger.Fatal("selecting a target role", zap.Error(err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading the document", zap.Error(err))
	}

	format, err := extract.FormatForPath(path)
	if err != nil {
		logger.Fatal("unsupported document",
			zap.Error(err),
			zap.String("hint", "supported extensions are .pdf, .docx and .txt"),
		)
	}

	engine := analysis.NewEngine(engineConfig(config), logger)

	timeout, _ := cmd.Flags().GetDuration("timeout")
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := engine.AnalyzeDocument(runCtx, data, format, profile)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	runLogger := logger.With(analysisRunFields(result, profile)...)

	if result.Rejected() {
		runLogger.Info("document rejected",
			zap.String("document_type", string(result.DocumentType)),
			zap.String("reason", "only resumes are scored"),
		)
		fmt.Printf("This looks like a %s, not a resume. Upload a resume to get a score.\n", result.DocumentType)
		return
	}

	printReport(result, profile)

	advice := maybeAdvise(ctx, config, result, string(data), profile, runLogger)
	if advice != nil {
		printAdvice(advice)
	}

	rep := &report{Role: profile, Result: result, Advice: advice}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := writeReport(rep, output); err != nil {
			logger.Fatal("writing the report", zap.Error(err))
		}
		runLogger.Info("report written", zap.String("filename", output))
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, cat, profile, rep, runLogger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, cat *catalog.Catalog, profile *catalog.RoleProfile, rep *report, logger *zap.Logger) error {
	switch action {
	case PromptShowCourses:
		printCourses(cat.CoursesForRole(profile.Name))
		return nil
	case PromptShowVideos:
		printVideos("Resume tips", cat.Videos("resume"))
		printVideos("Interview tips", cat.Videos("interview"))
		return nil
	case PromptDumpReport:
		filename, err := dumpReportToTmpFile(rep)
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func analysisRunFields(result *analysis.Result, profile *catalog.RoleProfile) []zap.Field {
	return logger.AnalysisFields(result.ID.String(), profile.Category, profile.Name)
}

// engineConfig merges the optional analysis section of the config file over
// the built-in defaults.
func engineConfig(config *Config) analysis.Config {
	if config == nil || config.Analysis == nil {
		return analysis.DefaultConfig()
	}
	return *config.Analysis
}

func loadCatalog(config *Config) (*catalog.Catalog, error) {
	if config != nil && strings.TrimSpace(config.Catalog) != "" {
		return catalog.LoadFile(config.Catalog)
	}
	return catalog.Load()
}

// selectProfile resolves the target role from flags, prompting interactively
// for anything not supplied.
func selectProfile(cmd *cobra.Command, cat *catalog.Catalog) (*catalog.RoleProfile, error) {
	categoryName, _ := cmd.Flags().GetString("category")
	roleName, _ := cmd.Flags().GetString("role")

	if categoryName == "" && roleName != "" {
		categoryName = cat.CategoryForRole(roleName)
		if categoryName == "" {
			return nil, fmt.Errorf("%w: role %q", catalog.ErrNotFound, roleName)
		}
	}

	if categoryName == "" {
		categoryPrompt := promptui.Select{
			Label: "Choose a role category",
			Items: cat.Categories(),
		}
		_, selected, err := categoryPrompt.Run()
		if err != nil {
			return nil, err
		}
		categoryName = selected
	}

	if roleName == "" {
		roles, err := cat.Roles(categoryName)
		if err != nil {
			return nil, err
		}

		rolePrompt := promptui.Select{
			Label: "Choose a target role",
			Items: roles,
		}
		_, selected, err := rolePrompt.Run()
		if err != nil {
			return nil, err
		}
		roleName = selected
	}

	return cat.Lookup(categoryName, roleName)
}

// maybeAdvise runs the optional AI advisor. Failures degrade to a warning
// and never affect the deterministic result.
func maybeAdvise(ctx context.Context, config *Config, result *analysis.Result, resumeText string, profile *catalog.RoleProfile, zlog *zap.Logger) *ai.ResumeAdvice {
	if config == nil || config.AI == nil || !config.AI.Enabled {
		return nil
	}

	advisor, model, err := newAdvisor(ctx, config.AI, zlog)
	if err != nil {
		zlog.Warn("skipping AI advice", zap.Error(err))
		return nil
	}

	zlog.Info("requesting AI advice", logger.AdvisorFields("gemini", model)...)

	advice, err := advisor.Advise(ctx, result, resumeText, profile)
	if err != nil {
		zlog.Warn("AI advice failed", zap.Error(err))
		return nil
	}

	return advice
}

func newAdvisor(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) (ai.Advisor, string, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, "", fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	keyFile := strings.TrimSpace(cfg.Gemini.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  keyFile,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, "", err
	}

	advisorLogger := logger.WithAdvisorFields(zlog, "gemini", generator.Model())
	advisor := gemini.NewAdvisor(generator, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength, advisorLogger)

	return advisor, generator.Model(), nil
}

func printReport(result *analysis.Result, profile *catalog.RoleProfile) {
	fmt.Printf("\nATS score for %s: %d/100\n\n", profile.Name, result.ATSScore)

	if km := result.KeywordMatch; km != nil {
		fmt.Printf("Keyword match: %.0f%%\n", km.Score)
		if len(km.MatchedSkills) > 0 {
			fmt.Printf("  matched: %s\n", strings.Join(km.MatchedSkills, ", "))
		}
		if len(km.MissingSkills) > 0 {
			fmt.Printf("  missing: %s\n", strings.Join(km.MissingSkills, ", "))
		}
	}

	if m := result.Metrics; m != nil {
		fmt.Printf("\nWords: %d  Sentences: %d  Skills detected: %d  Experience: %d years\n",
			m.WordCount, m.SentenceCount, m.SkillsCount, m.ExperienceYears)
	}

	if len(result.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range result.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
	fmt.Println()
}

func printAdvice(advice *ai.ResumeAdvice) {
	fmt.Println("AI advice:")
	if advice.Summary != "" {
		fmt.Printf("  %s\n", advice.Summary)
	}
	for _, s := range advice.Strengths {
		fmt.Printf("  + %s\n", s)
	}
	for _, g := range advice.Gaps {
		fmt.Printf("  - %s\n", g)
	}
	if advice.Rewrite != "" {
		fmt.Printf("  suggested summary line: %s\n", advice.Rewrite)
	}
	fmt.Println()
}

func printCourses(courses []catalog.Course) {
	if len(courses) == 0 {
		fmt.Println("No course recommendations for this role.")
		return
	}
	fmt.Println("Recommended courses:")
	for _, course := range courses {
		fmt.Printf("  - %s %s\n", course.Name, course.URL)
	}
}

func printVideos(label string, videos []catalog.Video) {
	if len(videos) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, video := range videos {
		fmt.Printf("  - %s %s\n", video.Name, video.URL)
	}
}

func writeReport(rep *report, path string) error {
	pretty, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, pretty, 0o644)
}

func dumpReportToTmpFile(rep *report) (string, error) {
	file, err := os.CreateTemp("", app+"-report-*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	pretty, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}

	if _, err := file.Write(pretty); err != nil {
		return "", err
	}

	return file.Name(), nil
}
