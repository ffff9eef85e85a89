package repository

// SequenceRepository porta do gerador de numeração sequencial por escopo e
// período. Next incrementa atomicamente o contador (escopo, período) e
// devolve o novo valor, garantindo unicidade mesmo sob requisições
// concorrentes.
type SequenceRepository interface {
	Next(scope, period string) (int64, error)
}
