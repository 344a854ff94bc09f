package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/config"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/budget"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/reflection"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagFillOut string

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill in a worksheet interactively and save it",
	Long: "Prompt for income, expenses, salary structure and reflection answers, then " +
		"save them as a worksheet file (YAML, JSON or TOML by extension).",
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVar(&flagFillOut, "out", constants.DefaultConfigFile, "path of the worksheet file to write")
	rootCmd.AddCommand(fillCmd)
}

// fillAnswers holds the raw form values. Amounts stay text until parsed.
type fillAnswers struct {
	Period           string
	Income           string
	SavingsGoal      string
	Expenses         [budget.NumCategories]string
	Salary           [numSalaryFields]string
	StudentName      string
	Course           string
	ConfidenceBefore int
	ConfidenceAfter  int
	Answers          [constants.ReflectionQuestionCount]string
}

const numSalaryFields = 7

var salaryLabels = [numSalaryFields]string{
	"Basic Pay",
	"HRA",
	"Special Allowance",
	"Variable Pay",
	"Employer PF / Contributions",
	"Employee PF / Contributions",
	"Tax",
}

func runFill(_ *cobra.Command, _ []string) error {
	logger, err := initializeLogger(config.LoggingConfig{Format: "console"}, flagLogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	answers := fillAnswers{
		Period:           constants.PeriodMonthly,
		ConfidenceBefore: constants.DefaultConfidence,
	}

	err = newFillForm(&answers).Run()
	if err == nil {
		answers.carryConfidence()
		err = newReflectionForm(&answers).Run()
	}
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logger.Debug("fill aborted", zap.String("op", "main.runFill"))
			fmt.Println("Worksheet not saved.")
			return nil
		}
		return err
	}

	conf, err := answers.configuration()
	if err != nil {
		return err
	}
	if err := conf.Save(flagFillOut); err != nil {
		return err
	}

	logger.Info("saved worksheet",
		zap.String("op", "main.runFill"),
		zap.String("path", flagFillOut),
		zap.Bool("exportable", conf.ReflectionRecord().HasStudent()),
	)
	return nil
}

func newFillForm(a *fillAnswers) *huh.Form {
	budgetFields := []huh.Field{
		huh.NewSelect[string]().
			Title("Budget period").
			Options(huh.NewOptions(constants.PeriodMonthly, constants.PeriodYearly)...).
			Value(&a.Period),
		amountInput("Income (₹)", &a.Income),
		amountInput("Savings goal (₹, optional)", &a.SavingsGoal),
	}

	var expenseFields []huh.Field
	for _, c := range budget.Categories() {
		expenseFields = append(expenseFields, amountInput(c.String()+" (₹)", &a.Expenses[c]))
	}

	var salaryFields []huh.Field
	for i, label := range salaryLabels {
		salaryFields = append(salaryFields, amountInput(label+" (₹)", &a.Salary[i]))
	}

	studentFields := []huh.Field{
		huh.NewInput().Title("Student name").Value(&a.StudentName),
		huh.NewInput().Title("Course / Section").Value(&a.Course),
		huh.NewSelect[int]().
			Title("Confidence before the exercise").
			Options(confidenceOptions()...).
			Value(&a.ConfidenceBefore),
	}

	return huh.NewForm(
		huh.NewGroup(budgetFields...).Title("Budget"),
		huh.NewGroup(expenseFields...).Title("Expenses"),
		huh.NewGroup(salaryFields...).Title("CTC structure (monthly)"),
		huh.NewGroup(studentFields...).Title("Student"),
	)
}

// newReflectionForm runs after newFillForm so the "after" rating can start
// from the "before" rating the student picked.
func newReflectionForm(a *fillAnswers) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[int]().
			Title("Confidence after the exercise").
			Options(confidenceOptions()...).
			Value(&a.ConfidenceAfter),
	}
	for i, question := range reflection.Questions {
		fields = append(fields, huh.NewText().Title(question).Value(&a.Answers[i]))
	}

	return huh.NewForm(huh.NewGroup(fields...).Title("Reflection"))
}

func (a *fillAnswers) carryConfidence() {
	a.ConfidenceAfter = a.ConfidenceBefore
}

func amountInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("0").
		Value(value).
		Validate(func(s string) error {
			_, err := parseAmount(s)
			return err
		})
}

func confidenceOptions() []huh.Option[int] {
	options := make([]huh.Option[int], 0, constants.MaxConfidence-constants.MinConfidence+1)
	for i := constants.MinConfidence; i <= constants.MaxConfidence; i++ {
		options = append(options, huh.NewOption(strconv.Itoa(i), i))
	}
	return options
}

// parseAmount reads a non-negative rupee amount. Blank means zero and
// thousands separators are ignored.
func parseAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	cleaned = strings.TrimPrefix(cleaned, constants.CurrencySymbol)
	if cleaned == "" {
		return 0, nil
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if amount < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return amount, nil
}

// configuration converts the form values into a worksheet.
func (a *fillAnswers) configuration() (*config.Configuration, error) {
	var amounts struct {
		income, goal float64
		expenses     [budget.NumCategories]float64
		salary       [numSalaryFields]float64
	}

	var err error
	if amounts.income, err = parseAmount(a.Income); err != nil {
		return nil, fmt.Errorf("income: %w", err)
	}
	if amounts.goal, err = parseAmount(a.SavingsGoal); err != nil {
		return nil, fmt.Errorf("savings goal: %w", err)
	}
	for _, c := range budget.Categories() {
		if amounts.expenses[c], err = parseAmount(a.Expenses[c]); err != nil {
			return nil, fmt.Errorf("%s: %w", c, err)
		}
	}
	for i, label := range salaryLabels {
		if amounts.salary[i], err = parseAmount(a.Salary[i]); err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
	}

	before, after := a.ConfidenceBefore, a.ConfidenceAfter

	return &config.Configuration{
		Period:      a.Period,
		Income:      amounts.income,
		SavingsGoal: amounts.goal,
		Expenses: config.Expenses{
			Housing:   amounts.expenses[budget.Housing],
			Food:      amounts.expenses[budget.Food],
			Transport: amounts.expenses[budget.Transport],
			Utilities: amounts.expenses[budget.Utilities],
			Lifestyle: amounts.expenses[budget.Lifestyle],
			Others:    amounts.expenses[budget.Others],
		},
		Salary: config.Salary{
			Basic:                amounts.salary[0],
			HRA:                  amounts.salary[1],
			SpecialAllowance:     amounts.salary[2],
			VariablePay:          amounts.salary[3],
			EmployerContribution: amounts.salary[4],
			EmployeeContribution: amounts.salary[5],
			Tax:                  amounts.salary[6],
		},
		Reflection: config.Reflection{
			StudentName:      strings.TrimSpace(a.StudentName),
			Course:           strings.TrimSpace(a.Course),
			ConfidenceBefore: &before,
			ConfidenceAfter:  &after,
			Answers:          a.Answers[:],
		},
	}, nil
}
