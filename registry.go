package lawdoc

import (
	"fmt"
	"regexp"

	"github.com/alnah/go-lawdoc/internal/placeholder"
)

// Category groups contract variables by the record they come from.
type Category string

// Variable categories, in display order.
const (
	CategoryClient   Category = "client"
	CategoryCase     Category = "case"
	CategoryPayment  Category = "payment"
	CategoryContract Category = "contract"
	CategoryFirm     Category = "firm"
)

var categoryOrder = []Category{CategoryClient, CategoryCase, CategoryPayment, CategoryContract, CategoryFirm}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// ContractVariable describes one placeholder a template may use.
type ContractVariable struct {
	Key         string
	Label       string
	Category    Category
	Description string
}

// Placeholder returns the variable's canonical {{key}} form.
func (v ContractVariable) Placeholder() string {
	return placeholder.Format(v.Key)
}

var variableKeyPattern = regexp.MustCompile(`^\w+$`)

// Registry is an immutable catalog of contract variables. The zero value
// is an empty registry.
type Registry struct {
	vars  []ContractVariable
	index map[string]int
}

// NewRegistry builds a registry, rejecting duplicate keys, keys that are
// not valid placeholder identifiers and unknown categories.
func NewRegistry(vars ...ContractVariable) (*Registry, error) {
	r := &Registry{
		vars:  make([]ContractVariable, 0, len(vars)),
		index: make(map[string]int, len(vars)),
	}
	for _, v := range vars {
		if !variableKeyPattern.MatchString(v.Key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVariableKey, v.Key)
		}
		if !v.Category.Valid() {
			return nil, fmt.Errorf("%w: %q for %s", ErrInvalidCategory, v.Category, v.Key)
		}
		if _, ok := r.index[v.Key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVariable, v.Key)
		}
		r.index[v.Key] = len(r.vars)
		r.vars = append(r.vars, v)
	}
	return r, nil
}

// DefaultRegistry returns the built-in law-firm catalog.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultVariables...)
	if err != nil {
		panic(fmt.Sprintf("lawdoc: invalid built-in registry: %v", err))
	}
	return r
}

// Lookup returns the variable registered under key.
func (r *Registry) Lookup(key string) (ContractVariable, bool) {
	if r == nil {
		return ContractVariable{}, false
	}
	i, ok := r.index[key]
	if !ok {
		return ContractVariable{}, false
	}
	return r.vars[i], true
}

// Contains reports whether key is registered.
func (r *Registry) Contains(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// Len returns the number of registered variables.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.vars)
}

// Variables returns a copy of all variables in declaration order.
func (r *Registry) Variables() []ContractVariable {
	if r == nil {
		return nil
	}
	out := make([]ContractVariable, len(r.vars))
	copy(out, r.vars)
	return out
}

// ByCategory returns the variables of one category in declaration order.
func (r *Registry) ByCategory(c Category) []ContractVariable {
	var out []ContractVariable
	for _, v := range r.Variables() {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}

// Categories returns the categories that have at least one variable, in
// display order.
func (r *Registry) Categories() []Category {
	var out []Category
	for _, c := range categoryOrder {
		if len(r.ByCategory(c)) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// UnknownPlaceholders returns the placeholders in content that are not
// registered, in first-occurrence order. It is advisory only.
func (r *Registry) UnknownPlaceholders(content string) []string {
	return placeholder.Unknown(content, r.Contains)
}

var defaultVariables = []ContractVariable{
	// Client
	{Key: "client_name", Label: "اسم العميل", Category: CategoryClient, Description: "الاسم الكامل للعميل"},
	{Key: "client_national_id", Label: "رقم هوية العميل", Category: CategoryClient},
	{Key: "client_phone", Label: "هاتف العميل", Category: CategoryClient},
	{Key: "client_email", Label: "بريد العميل", Category: CategoryClient},
	{Key: "client_address", Label: "عنوان العميل", Category: CategoryClient},
	{Key: "client_nationality", Label: "جنسية العميل", Category: CategoryClient},

	// Case
	{Key: "case_number", Label: "رقم القضية", Category: CategoryCase},
	{Key: "case_title", Label: "عنوان القضية", Category: CategoryCase},
	{Key: "case_type", Label: "نوع القضية", Category: CategoryCase},
	{Key: "court_name", Label: "اسم المحكمة", Category: CategoryCase},
	{Key: "opponent_name", Label: "اسم الخصم", Category: CategoryCase},
	{Key: "case_description", Label: "وصف القضية", Category: CategoryCase},

	// Payment
	{Key: "total_amount", Label: "المبلغ الإجمالي", Category: CategoryPayment, Description: "إجمالي أتعاب العقد"},
	{Key: "total_amount_words", Label: "المبلغ كتابة", Category: CategoryPayment},
	{Key: "down_payment", Label: "الدفعة المقدمة", Category: CategoryPayment},
	{Key: "installments_count", Label: "عدد الأقساط", Category: CategoryPayment},
	{Key: "installment_amount", Label: "قيمة القسط", Category: CategoryPayment},
	{Key: "payment_method", Label: "طريقة الدفع", Category: CategoryPayment},
	{Key: "currency", Label: "العملة", Category: CategoryPayment},

	// Contract
	{Key: "contract_number", Label: "رقم العقد", Category: CategoryContract},
	{Key: "contract_date", Label: "تاريخ العقد", Category: CategoryContract, Description: "يقبل القيمة auto لتاريخ اليوم"},
	{Key: "contract_start_date", Label: "تاريخ بداية العقد", Category: CategoryContract},
	{Key: "contract_end_date", Label: "تاريخ نهاية العقد", Category: CategoryContract},
	{Key: "contract_duration", Label: "مدة العقد", Category: CategoryContract},
	{Key: "contract_subject", Label: "موضوع العقد", Category: CategoryContract},
	{Key: "current_date", Label: "التاريخ الحالي", Category: CategoryContract, Description: "يملأ تلقائياً بتاريخ الإنشاء"},

	// Firm
	{Key: "firm_name", Label: "اسم المكتب", Category: CategoryFirm},
	{Key: "lawyer_name", Label: "اسم المحامي", Category: CategoryFirm},
	{Key: "lawyer_license", Label: "رقم ترخيص المحامي", Category: CategoryFirm},
	{Key: "firm_address", Label: "عنوان المكتب", Category: CategoryFirm},
	{Key: "firm_phone", Label: "هاتف المكتب", Category: CategoryFirm},
	{Key: "firm_email", Label: "بريد المكتب", Category: CategoryFirm},
	{Key: "firm_commercial_register", Label: "السجل التجاري", Category: CategoryFirm},
}
