// @title           speechwriter API
// @version         1.0
// @description     Generates wedding speeches and answers questions about them.
// @BasePath        /api
package api
