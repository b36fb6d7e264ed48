package entity

// PrinterOperator is the default operator stored in a printer's config.
type PrinterOperator struct {
	ID       Scalar `json:"id,omitempty"`
	Password Scalar `json:"password,omitempty"`
	Till     Scalar `json:"till,omitempty"`
	Name     Scalar `json:"name,omitempty"`
}

// PrinterConfig is the free-form config block; only the operator is read.
type PrinterConfig struct {
	Operator *PrinterOperator `json:"operator,omitempty"`
}

// Printer is a fiscal device registered with the print service.
type Printer struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Model     string        `json:"model"`
	Transport string        `json:"transport"`
	Port      *string       `json:"port,omitempty"`
	IPAddress *string       `json:"ip_address,omitempty"`
	TCPPort   int           `json:"tcp_port,omitempty"`
	Enabled   bool          `json:"enabled"`
	DryRun    bool          `json:"dry_run"`
	Config    PrinterConfig `json:"config"`
	CreatedAt string        `json:"created_at,omitempty"`
	UpdatedAt string        `json:"updated_at,omitempty"`
}

// DefaultOperator returns the configured operator, or a blank one.
func (p *Printer) DefaultOperator() Operator {
	if p == nil || p.Config.Operator == nil {
		return Operator{}
	}
	op := p.Config.Operator
	return Operator{
		ID:       op.ID.String(),
		Password: op.Password.String(),
		Till:     op.Till.String(),
		Name:     op.Name.String(),
	}.Trimmed()
}
