package dto

// CustomerRequest entrada para criar ou atualizar um cliente. O WhatsApp
// normalizado (somente dígitos) vira o ID do documento.
type CustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Whatsapp string `json:"whatsapp" validate:"required,min=8"`
	CnpjCpf  string `json:"cnpjCpf"`
}

// CustomerResponse saída de um cliente.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	CnpjCpf string `json:"cnpjCpf"`
}

// SupplierRequest entrada para criar ou atualizar um fornecedor. O CNPJ/CPF
// normalizado vira o ID do documento.
type SupplierRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	CnpjCpf       string `json:"cnpjCpf" validate:"required,min=8"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
}

// SupplierResponse saída de um fornecedor.
type SupplierResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
}
