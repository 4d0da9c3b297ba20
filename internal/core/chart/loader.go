package chart

import (
	"fmt"
	"os"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// extensionAccount mirrors domain.Account in a YAML file. IsActive defaults to true.
type extensionAccount struct {
	Code        string                `yaml:"code"`
	Name        string                `yaml:"name"`
	Type        domain.AccountType    `yaml:"type"`
	SubType     domain.AccountSubType `yaml:"subType"`
	Description string                `yaml:"description"`
	IsActive    *bool                 `yaml:"isActive"`
}

// Extension is the on-disk format for extending the built-in chart.
//
//	accounts:
//	  - code: "6150"
//	    name: Landscaping
//	    type: expense
//	    subType: operating_expense
//	expenseCategories:
//	  landscaping: "6150"
//	paymentTypes:
//	  storage: "4900"
type Extension struct {
	Accounts          []extensionAccount `yaml:"accounts"`
	ExpenseCategories map[string]string  `yaml:"expenseCategories"`
	PaymentTypes      map[string]string  `yaml:"paymentTypes"`
}

// LoadRegistry reads a YAML extension file and returns the default chart extended by it.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart of accounts file: %w", err)
	}
	return ParseRegistry(data)
}

// ParseRegistry decodes a YAML extension and applies it on top of the default chart.
// Extension accounts are appended after the built-in ones and may not reuse a code;
// category mappings may override the defaults.
func ParseRegistry(data []byte) (*Registry, error) {
	var ext Extension
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("failed to parse chart of accounts YAML: %w", err)
	}
	return defaultRegistry.Extend(ext)
}

// Extend returns a new Registry holding r's accounts and mappings plus ext. r is unchanged.
func (r *Registry) Extend(ext Extension) (*Registry, error) {
	accounts := r.Accounts()
	for _, a := range ext.Accounts {
		active := true
		if a.IsActive != nil {
			active = *a.IsActive
		}
		accounts = append(accounts, domain.Account{
			Code:        a.Code,
			Name:        a.Name,
			Type:        a.Type,
			SubType:     a.SubType,
			Description: a.Description,
			IsActive:    active,
		})
	}

	expenseCategories := make(map[string]string, len(r.expenseCategories)+len(ext.ExpenseCategories))
	for k, v := range r.expenseCategories {
		expenseCategories[k] = v
	}
	for k, v := range ext.ExpenseCategories {
		expenseCategories[k] = v
	}

	paymentTypes := make(map[string]string, len(r.paymentTypes)+len(ext.PaymentTypes))
	for k, v := range r.paymentTypes {
		paymentTypes[k] = v
	}
	for k, v := range ext.PaymentTypes {
		paymentTypes[k] = v
	}

	return NewRegistry(accounts, expenseCategories, paymentTypes)
}
