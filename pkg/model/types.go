package model

// Name is the stable identity of a form field. Payload keys, error slots, and
// rule bindings all reference fields through this type instead of ad hoc
// strings so the rule set stays checkable at compile time.
type Name string

// Canonical field identities used by the built-in quote and contact
// definitions. Definitions loaded from documents may introduce additional
// names; these constants cover the fields the engine's cross-field rules and
// normalization table know about.
const (
	FieldNome           Name = "nome"
	FieldMorada         Name = "morada"
	FieldCodigoPostal   Name = "codigo_postal"
	FieldLocalidade     Name = "localidade"
	FieldNIF            Name = "nif"
	FieldTelemovel      Name = "telemovel"
	FieldEmail          Name = "email"
	FieldDataNascimento Name = "data_nascimento"
	FieldMatricula      Name = "matricula"
	FieldDataMatricula  Name = "data_matricula"
	FieldLugares        Name = "lugares"
	FieldMarca          Name = "marca"
	FieldModelo         Name = "modelo"
	FieldCilindrada     Name = "cilindrada"
	FieldPesoBruto      Name = "peso_bruto"
	FieldDataCarta      Name = "data_carta"
	FieldInicioSeguro   Name = "inicio_seguro"
	FieldMensagem       Name = "mensagem"
)

// PayloadKeyCategory is the reserved payload key carrying the active category.
// Field definitions must not reuse it.
const PayloadKeyCategory = "categoria"

// PayloadKeyPlateNormalized carries the upper-cased, hyphen-free plate value
// alongside the raw plate field when one is present.
const PayloadKeyPlateNormalized = "matricula_normalizada"

// Category identifies an insurance product variant. Exactly one category is
// active at a time; fields tagged with a category are only visible (and only
// validated) while that category is active.
type Category string

const (
	CategoryAuto      Category = "auto"
	CategoryMoto      Category = "moto"
	CategoryAcidentes Category = "acidentes"
	CategorySaude     Category = "saude"
	CategoryVida      Category = "vida"
	CategoryHabitacao Category = "hab"
	CategoryPPR       Category = "ppr"
	CategoryRC        Category = "rc"
)

// RuleKind names a synchronous format validator. The validation package binds
// kinds to predicate implementations; definitions reference them as data.
type RuleKind string

const (
	RuleNone          RuleKind = ""
	RuleEmail         RuleKind = "email"
	RulePhonePT       RuleKind = "phone-pt"
	RulePostalPT      RuleKind = "postal-pt"
	RuleNIF           RuleKind = "nif"
	RulePlatePT       RuleKind = "plate-pt"
	RuleMinWords      RuleKind = "min-words"
	RuleMinLength     RuleKind = "min-length"
	RulePastDate      RuleKind = "past-date"
	RuleTodayOrFuture RuleKind = "today-or-future"
)

// Normalize names a value rewrite applied as a side effect of validation and
// again when the payload is flattened.
type Normalize string

const (
	NormalizeNone   Normalize = ""
	NormalizeDigits Normalize = "digits"
	NormalizePlate  Normalize = "plate"
)

// Field carries the metadata the engine needs about a single input: identity,
// required-ness, owning category (empty means shared across every category),
// the format rule with its messages, and payload normalization.
type Field struct {
	Name        Name      `json:"name" yaml:"name"`
	Label       string    `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	InputType   string    `json:"inputType,omitempty" yaml:"input_type,omitempty"`
	Required    bool      `json:"required" yaml:"required"`
	Category    Category  `json:"category,omitempty" yaml:"category,omitempty"`
	Rule        RuleKind  `json:"rule,omitempty" yaml:"rule,omitempty"`
	RuleParam   int       `json:"ruleParam,omitempty" yaml:"rule_param,omitempty"`
	Message     string    `json:"message,omitempty" yaml:"message,omitempty"`
	LiveMessage string    `json:"liveMessage,omitempty" yaml:"live_message,omitempty"`
	Normalize   Normalize `json:"normalize,omitempty" yaml:"normalize,omitempty"`
	FreeText    bool      `json:"freeText,omitempty" yaml:"free_text,omitempty"`
}

// CategoryInfo pairs a category key with its selector label and the display
// title shown above the form while the category is active.
type CategoryInfo struct {
	Key   Category `json:"key" yaml:"key"`
	Label string   `json:"label,omitempty" yaml:"label,omitempty"`
	Title string   `json:"title,omitempty" yaml:"title,omitempty"`
}

// CrossRule relates two date fields: Second must fall strictly after First and
// no earlier than First plus MinYears. Violations are reported against Second;
// the earlier-than-First message takes precedence when both would fire.
type CrossRule struct {
	First           Name   `json:"first" yaml:"first"`
	Second          Name   `json:"second" yaml:"second"`
	MinYears        int    `json:"minYears,omitempty" yaml:"min_years,omitempty"`
	BeforeMessage   string `json:"beforeMessage,omitempty" yaml:"before_message,omitempty"`
	TooEarlyMessage string `json:"tooEarlyMessage,omitempty" yaml:"too_early_message,omitempty"`
}

// Messages holds the form-level status copy. Empty entries fall back to the
// package defaults, which match the Portuguese quote form the engine ships.
type Messages struct {
	Required string `json:"required,omitempty" yaml:"required,omitempty"`
	Invalid  string `json:"invalid,omitempty" yaml:"invalid,omitempty"`
	Sending  string `json:"sending,omitempty" yaml:"sending,omitempty"`
	Success  string `json:"success,omitempty" yaml:"success,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Default status and error copy, used when a definition leaves Messages
// entries empty.
const (
	DefaultRequiredMessage = "Preenchimento obrigatório."
	DefaultInvalidMessage  = "Por favor, corrija os campos assinalados."
	DefaultSendingMessage  = "A enviar…"
	DefaultSuccessMessage  = "Pedido enviado com sucesso. Vamos contactar o mais breve possível."
	DefaultErrorMessage    = "Não foi possível enviar agora. Tente novamente ou contacte-nos."
)

// DefaultTitle is the generic display title used when a category has no entry
// in the definition's title table.
const DefaultTitle = "Pedido de Simulação"

// Definition is the declarative description of one form: its closed category
// set, the field registry, cross-field rules, and status copy. Definitions are
// plain data; the formdef package loads them from YAML/JSON documents and the
// openapi packages derive them from API schemas.
type Definition struct {
	Key             string         `json:"key" yaml:"key"`
	Title           string         `json:"title,omitempty" yaml:"title,omitempty"`
	DefaultCategory Category       `json:"defaultCategory,omitempty" yaml:"default_category,omitempty"`
	Categories      []CategoryInfo `json:"categories,omitempty" yaml:"categories,omitempty"`
	Fields          []Field        `json:"fields" yaml:"fields"`
	CrossRules      []CrossRule    `json:"crossRules,omitempty" yaml:"cross_rules,omitempty"`
	Messages        Messages       `json:"messages,omitempty" yaml:"messages,omitempty"`
}
