// Package config defines the worksheet file layout and includes functions for
// loading it and converting it into the immutable inputs of the calculators.
package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/budget"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/ctc"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/reflection"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides, e.g. BUDGET_INCOME or
// BUDGET_REFLECTION_STUDENTNAME.
const EnvPrefix = "BUDGET"

// envKeys are the scalar keys a worksheet file can take from the environment.
var envKeys = []string{
	"period",
	"income",
	"savingsGoal",
	"expenses.housing",
	"expenses.food",
	"expenses.transport",
	"expenses.utilities",
	"expenses.lifestyle",
	"expenses.others",
	"salary.basic",
	"salary.hra",
	"salary.specialAllowance",
	"salary.variablePay",
	"salary.employerContribution",
	"salary.employeeContribution",
	"salary.tax",
	"reflection.studentName",
	"reflection.course",
	"reflection.confidenceBefore",
	"reflection.confidenceAfter",
	"logging.level",
	"logging.format",
	"logging.outputFile",
	"output.format",
}

// Configuration holds one worksheet submission plus runtime options.
type Configuration struct {
	Period      string        `yaml:"period" mapstructure:"period" toml:"period" json:"period"` // Monthly or Yearly
	Income      float64       `yaml:"income" mapstructure:"income" toml:"income" json:"income"`
	SavingsGoal float64       `yaml:"savingsGoal,omitempty" mapstructure:"savingsGoal" toml:"savingsGoal,omitempty" json:"savingsGoal,omitempty"`
	Expenses    Expenses      `yaml:"expenses" mapstructure:"expenses" toml:"expenses" json:"expenses"`
	Salary      Salary        `yaml:"salary" mapstructure:"salary" toml:"salary" json:"salary"`
	Reflection  Reflection    `yaml:"reflection" mapstructure:"reflection" toml:"reflection" json:"reflection"`
	Logging     LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging" toml:"logging,omitempty" json:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty" mapstructure:"output" toml:"output,omitempty" json:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level" toml:"level,omitempty" json:"level,omitempty"`                     // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format" toml:"format,omitempty" json:"format,omitempty"`                 // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile" toml:"outputFile,omitempty" json:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format" toml:"format,omitempty" json:"format,omitempty"` // pretty, csv
}

// Expenses holds one amount per fixed category. Omitted categories are zero.
type Expenses struct {
	Housing   float64 `yaml:"housing" mapstructure:"housing" toml:"housing" json:"housing"`
	Food      float64 `yaml:"food" mapstructure:"food" toml:"food" json:"food"`
	Transport float64 `yaml:"transport" mapstructure:"transport" toml:"transport" json:"transport"`
	Utilities float64 `yaml:"utilities" mapstructure:"utilities" toml:"utilities" json:"utilities"`
	Lifestyle float64 `yaml:"lifestyle" mapstructure:"lifestyle" toml:"lifestyle" json:"lifestyle"`
	Others    float64 `yaml:"others" mapstructure:"others" toml:"others" json:"others"`
}

// Salary is the monthly CTC structure.
type Salary struct {
	Basic                float64 `yaml:"basic" mapstructure:"basic" toml:"basic" json:"basic"`
	HRA                  float64 `yaml:"hra" mapstructure:"hra" toml:"hra" json:"hra"`
	SpecialAllowance     float64 `yaml:"specialAllowance" mapstructure:"specialAllowance" toml:"specialAllowance" json:"specialAllowance"`
	VariablePay          float64 `yaml:"variablePay" mapstructure:"variablePay" toml:"variablePay" json:"variablePay"`
	EmployerContribution float64 `yaml:"employerContribution" mapstructure:"employerContribution" toml:"employerContribution" json:"employerContribution"`
	EmployeeContribution float64 `yaml:"employeeContribution" mapstructure:"employeeContribution" toml:"employeeContribution" json:"employeeContribution"`
	Tax                  float64 `yaml:"tax" mapstructure:"tax" toml:"tax" json:"tax"`
}

// Reflection holds the self-assessment. Unset confidence ratings take their defaults.
type Reflection struct {
	StudentName      string   `yaml:"studentName" mapstructure:"studentName" toml:"studentName" json:"studentName"`
	Course           string   `yaml:"course" mapstructure:"course" toml:"course" json:"course"`
	ConfidenceBefore *int     `yaml:"confidenceBefore,omitempty" mapstructure:"confidenceBefore" toml:"confidenceBefore,omitempty" json:"confidenceBefore,omitempty"`
	ConfidenceAfter  *int     `yaml:"confidenceAfter,omitempty" mapstructure:"confidenceAfter" toml:"confidenceAfter,omitempty" json:"confidenceAfter,omitempty"`
	Answers          []string `yaml:"answers" mapstructure:"answers" toml:"answers" json:"answers"`
}

// LoadConfiguration takes a file path as input and loads the worksheet there.
// The format follows the extension (yaml, yml, json, toml); anything else is read as YAML.
// BUDGET_* environment variables override the file, including keys it omits.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment for %s, %s", key, err)
		}
	}

	v.SetConfigFile(configPath)
	v.SetConfigType(configType(configPath))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a worksheet of the given format ("yaml", "json", "toml") from r.
// The environment is not consulted.
func LoadConfigurationFromReader(r io.Reader, format string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType(format)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

func configType(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "yaml", "yml", "json", "toml":
		return ext
	default:
		return "yaml"
	}
}

// BudgetInput converts the budget fields into a budget.Input.
func (conf *Configuration) BudgetInput() (budget.Input, error) {
	period, err := budget.ParsePeriod(conf.Period)
	if err != nil {
		return budget.Input{}, err
	}

	var expenses budget.Expenses
	expenses[budget.Housing] = conf.Expenses.Housing
	expenses[budget.Food] = conf.Expenses.Food
	expenses[budget.Transport] = conf.Expenses.Transport
	expenses[budget.Utilities] = conf.Expenses.Utilities
	expenses[budget.Lifestyle] = conf.Expenses.Lifestyle
	expenses[budget.Others] = conf.Expenses.Others

	return budget.Input{
		Period:      period,
		Income:      conf.Income,
		Expenses:    expenses,
		SavingsGoal: conf.SavingsGoal,
	}, nil
}

// SalaryStructure converts the salary fields into a ctc.Structure.
func (conf *Configuration) SalaryStructure() ctc.Structure {
	return ctc.Structure{
		Basic:                conf.Salary.Basic,
		HRA:                  conf.Salary.HRA,
		SpecialAllowance:     conf.Salary.SpecialAllowance,
		VariablePay:          conf.Salary.VariablePay,
		EmployerContribution: conf.Salary.EmployerContribution,
		EmployeeContribution: conf.Salary.EmployeeContribution,
		Tax:                  conf.Salary.Tax,
	}
}

// ReflectionRecord converts the reflection fields, applying confidence defaults.
func (conf *Configuration) ReflectionRecord() reflection.Record {
	before, after := reflection.ResolveConfidence(conf.Reflection.ConfidenceBefore, conf.Reflection.ConfidenceAfter)
	return reflection.Record{
		StudentName:      strings.TrimSpace(conf.Reflection.StudentName),
		Course:           strings.TrimSpace(conf.Reflection.Course),
		ConfidenceBefore: before,
		ConfidenceAfter:  after,
		Answers:          reflection.AnswersFrom(conf.Reflection.Answers),
	}
}

// ValidateConfiguration checks the worksheet and returns advisory warnings.
// The error lists every value that cannot be accepted.
func (conf *Configuration) ValidateConfiguration() ([]string, error) {
	in, err := conf.BudgetInput()
	if err != nil {
		return nil, err
	}

	validator := validation.WorksheetValidator{
		Budget:     in,
		Salary:     conf.SalaryStructure(),
		Reflection: conf.ReflectionRecord(),
	}
	warnings, err := validator.ValidateAll()
	if err != nil {
		return nil, err
	}

	if len(conf.Reflection.Answers) > len(reflection.Questions) {
		warnings = append(warnings, fmt.Sprintf("Only the first %d reflection answers are kept (got %d)",
			len(reflection.Questions), len(conf.Reflection.Answers)))
	}
	return warnings, nil
}
