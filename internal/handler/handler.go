package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"calculator/backend/helper"
	"calculator/backend/internal/calculator"
	"calculator/backend/internal/middleware"
	"calculator/backend/internal/model"
	"calculator/backend/internal/monitoring"
)

// Handler serves the arithmetic routes.
type Handler struct {
	log     *zap.Logger
	calc    calculator.Calculator
	metrics *monitoring.Metrics
}

// New returns a Handler. metrics may be nil.
func New(log *zap.Logger, calc calculator.Calculator, metrics *monitoring.Metrics) *Handler {
	return &Handler{log: log, calc: calc, metrics: metrics}
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

// binaryOp describes a two-operand route.
type binaryOp struct {
	name    string // as written in log lines
	metric  string
	symbol  string
	message string
	left    string
	right   string
	compute func(calc calculator.Calculator, a, b float64) (float64, error)
}

var (
	addition = binaryOp{
		name: "Addition", metric: "add", symbol: "+", message: "Addition successful",
		left: "num1", right: "num2", compute: calculator.Calculator.Add,
	}
	subtraction = binaryOp{
		name: "Subtraction", metric: "subtract", symbol: "-", message: "Subtraction successful",
		left: "num1", right: "num2", compute: calculator.Calculator.Subtract,
	}
	multiplication = binaryOp{
		name: "Multiplication", metric: "multiply", symbol: "*", message: "Multiplication successful",
		left: "num1", right: "num2", compute: calculator.Calculator.Multiply,
	}
	division = binaryOp{
		name: "Division", metric: "divide", symbol: "/", message: "Division successful",
		left: "num1", right: "num2", compute: calculator.Calculator.Divide,
	}
	exponentiation = binaryOp{
		name: "Exponentiation", metric: "exponent", symbol: "^", message: "Exponentiation successful",
		left: "base", right: "exponent",
		compute: func(calc calculator.Calculator, base, exponent float64) (float64, error) {
			return calc.Exponent(base, exponent), nil
		},
	}
	modulo = binaryOp{
		name: "Modulo", metric: "modulo", symbol: "%", message: "Modulo operation successful",
		left: "dividend", right: "divisor", compute: calculator.Calculator.Modulo,
	}
)

func (h *Handler) Add(c *gin.Context)      { h.binary(c, addition) }
func (h *Handler) Subtract(c *gin.Context) { h.binary(c, subtraction) }
func (h *Handler) Multiply(c *gin.Context) { h.binary(c, multiplication) }
func (h *Handler) Divide(c *gin.Context)   { h.binary(c, division) }
func (h *Handler) Exponent(c *gin.Context) { h.binary(c, exponentiation) }
func (h *Handler) Modulo(c *gin.Context)   { h.binary(c, modulo) }

func (h *Handler) binary(c *gin.Context, op binaryOp) {
	log := h.requestLogger(c)

	payload, ok := h.readPayload(c, log, op.name, op.metric)
	if !ok {
		return
	}

	values, err := calculator.ValidateInputs(payload.Operand(op.left), payload.Operand(op.right))
	if err != nil {
		h.fail(c, log, op.name, op.metric, err)
		return
	}
	a, b := values[0], values[1]

	result, err := op.compute(h.calc, a, b)
	if err != nil {
		cerr := calculator.FromError(err)
		if cerr.Kind == calculator.KindDivisionByZero {
			log.Error(fmt.Sprintf("%s by zero attempt: %s %s %s", op.name,
				helper.FormatNumber(a), op.symbol, helper.FormatNumber(b)), zap.String("error", cerr.Message))
			h.reject(c, op.metric, cerr)
			return
		}
		h.fail(c, log, op.name, op.metric, err)
		return
	}

	log.Info(fmt.Sprintf("%s successful: %s %s %s = %s", op.name,
		helper.FormatNumber(a), op.symbol, helper.FormatNumber(b), helper.FormatNumber(result)))
	h.metrics.RecordOperation(op.metric, monitoring.OutcomeSuccess)
	c.JSON(http.StatusOK, model.Success(op.message, result))
}

const (
	sqrtName   = "Square Root"
	sqrtMetric = "square_root"
)

func (h *Handler) SquareRoot(c *gin.Context) {
	log := h.requestLogger(c)

	payload, ok := h.readPayload(c, log, sqrtName, sqrtMetric)
	if !ok {
		return
	}

	// Square root reports every bad input with its own message.
	values, err := calculator.ValidateInputs(payload.Operand("number"))
	if err != nil {
		h.fail(c, log, sqrtName, sqrtMetric, calculator.ErrNegativeSquareRoot)
		return
	}
	number := values[0]

	result, err := h.calc.SquareRoot(number)
	if err != nil {
		h.fail(c, log, sqrtName, sqrtMetric, err)
		return
	}

	log.Info(fmt.Sprintf("Square root successful: sqrt(%s) = %s",
		helper.FormatNumber(number), helper.FormatNumber(result)))
	h.metrics.RecordOperation(sqrtMetric, monitoring.OutcomeSuccess)
	c.JSON(http.StatusOK, model.Success("Square root successful", result))
}

func (h *Handler) requestLogger(c *gin.Context) *zap.Logger {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return h.log.With(zap.String(middleware.RequestIDKey, id))
	}
	return h.log
}

// readPayload decodes and logs the body, replying 400 itself when it is not a JSON object.
// Bodies not sent as application/json are ignored and read as an empty object.
func (h *Handler) readPayload(c *gin.Context, log *zap.Logger, name, metric string) (model.Payload, bool) {
	if c.ContentType() != binding.MIMEJSON {
		log.Info(fmt.Sprintf("%s request received with data: {}", name),
			zap.String("content_type", c.ContentType()))
		return model.Payload{}, true
	}

	body, err := c.GetRawData()
	if err != nil {
		log.Info(fmt.Sprintf("%s request received with unreadable body", name))
		h.fail(c, log, name, metric, calculator.Internal(err))
		return nil, false
	}

	payload, err := model.DecodePayload(body)
	if err != nil {
		log.Info(fmt.Sprintf("%s request received with data: %s", name, body))
		h.fail(c, log, name, metric, calculator.MalformedBody(err))
		return nil, false
	}

	log.Info(fmt.Sprintf("%s request received with data: %s", name, payload))
	return payload, true
}

func (h *Handler) fail(c *gin.Context, log *zap.Logger, name, metric string, err error) {
	cerr := calculator.FromError(err)

	if cerr.Kind == calculator.KindInternal {
		log.Error(fmt.Sprintf("Error in %s operation: %v", strings.ToLower(name), cerr.Cause()))
		h.metrics.RecordOperation(metric, monitoring.OutcomeFailed)
		c.JSON(cerr.Kind.Status(), model.Failure(cerr.Message))
		return
	}

	log.Error(cerr.Message, zap.Stringer("kind", cerr.Kind))
	h.reject(c, metric, cerr)
}

// reject replies with a 4xx envelope; the caller has already logged.
func (h *Handler) reject(c *gin.Context, metric string, cerr *calculator.Error) {
	h.metrics.RecordOperation(metric, monitoring.OutcomeRejected)
	c.JSON(cerr.Kind.Status(), model.Failure(cerr.Message))
}
