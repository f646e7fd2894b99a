// Package credential: motor de resolución de credenciales contra la planilla USUARIOS.
//
// Flujo por intento de login, sin estado entre llamadas:
//
//	ResolveColumns(fila 0) -> Columns
//	Match(filas, Columns, login, senha) -> entity.User | error de dominio
//
// Las filas son de solo lectura; celdas ausentes o filas cortas se leen como "".
// Todas las funciones son puras y seguras para uso concurrente.
package credential
