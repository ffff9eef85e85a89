package entity

// Customer representa um cliente da loja. O ID é o telefone (somente dígitos).
type Customer struct {
	ID      string // telefone limpo
	Name    string
	CnpjCpf string
}

// Supplier representa um fornecedor. O ID é o CNPJ/CPF (somente dígitos).
type Supplier struct {
	ID            string // CNPJ/CPF limpo
	Name          string
	ContactPerson string
	Phone         string
}
