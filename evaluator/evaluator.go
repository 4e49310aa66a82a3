// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: The tree-walking execution engine. It recursively walks the AST,
//          producing object.Value results for expressions and side effects
//          (print, variable mutation) for statements. Unlike a sentinel
//          error object threaded through every return, failures use plain
//          Go error returns; a `return` statement unwinds through blocks
//          and loops via a small typed signal rather than a mutable
//          per-scope flag.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/object"
)

// flow reports whether a statement triggered a `return`. Propagating this
// as a return value (rather than a field mutated on some shared state)
// means a nested block can't forget to check it and keep executing past
// a return.
type flow struct {
	returning bool
	value     object.Value
}

var noFlow = flow{}

// Eval runs a full program: every top-level statement in order. A bare
// `return` at top level simply stops execution (there is no enclosing
// call to return *from*, but the source allows it).
func Eval(program *ast.Program, env *object.Environment) error {
	for _, stmt := range program.Statements {
		f, err := evalStatement(stmt, env)
		if err != nil {
			return err
		}
		if f.returning {
			return nil
		}
	}
	return nil
}

// EvalExpression evaluates a single bare expression, the entry point the
// `evaluate` CLI subcommand uses.
func EvalExpression(expr ast.Expression, env *object.Environment) (object.Value, error) {
	return evalExpr(expr, env)
}

func evalStatement(stmt ast.Statement, env *object.Environment) (flow, error) {
	switch node := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := evalExpr(node.Expression, env)
		return noFlow, err

	case *ast.PrintStmt:
		val, err := evalExpr(node.Value, env)
		if err != nil {
			return noFlow, err
		}
		fmt.Println(val.Inspect())
		return noFlow, nil

	case *ast.VarStmt:
		var val object.Value = object.NilValue
		if node.Initializer != nil {
			v, err := evalExpr(node.Initializer, env)
			if err != nil {
				return noFlow, err
			}
			val = v
		}
		env.DeclareWith(node.Name.Value, val)
		return noFlow, nil

	case *ast.BlockStmt:
		return evalBlock(node, object.NewEnclosedEnvironment(env))

	case *ast.IfStmt:
		return evalIf(node, env)

	case *ast.WhileStmt:
		return evalWhile(node, env)

	case *ast.ForStmt:
		return evalFor(node, env)

	case *ast.FunctionStmt:
		env.DeclareWith(node.Name.Value, &object.Function{Definition: node, Env: env})
		return noFlow, nil

	case *ast.ReturnStmt:
		var val object.Value = object.NilValue
		if node.Value != nil {
			v, err := evalExpr(node.Value, env)
			if err != nil {
				return noFlow, err
			}
			val = v
		}
		return flow{returning: true, value: val}, nil
	}

	return noFlow, fmt.Errorf("evaluator: unhandled statement %T", stmt)
}

func evalBlock(block *ast.BlockStmt, env *object.Environment) (flow, error) {
	for _, stmt := range block.Statements {
		f, err := evalStatement(stmt, env)
		if err != nil {
			return noFlow, err
		}
		if f.returning {
			return f, nil
		}
	}
	return noFlow, nil
}

func evalIf(node *ast.IfStmt, env *object.Environment) (flow, error) {
	cond, err := evalExpr(node.Condition, env)
	if err != nil {
		return noFlow, err
	}
	if object.IsTruthy(cond) {
		return evalStatement(node.Consequence, env)
	}
	if node.Alternative != nil {
		return evalStatement(node.Alternative, env)
	}
	return noFlow, nil
}

func evalWhile(node *ast.WhileStmt, env *object.Environment) (flow, error) {
	for {
		cond, err := evalExpr(node.Condition, env)
		if err != nil {
			return noFlow, err
		}
		if !object.IsTruthy(cond) {
			return noFlow, nil
		}
		f, err := evalStatement(node.Body, env)
		if err != nil {
			return noFlow, err
		}
		if f.returning {
			return f, nil
		}
	}
}

// evalFor evaluates the C-style for loop in its own enclosing scope (so
// `for (var i = 0; ...; ...)` doesn't leak i into the surrounding block).
// A nil Condition evaluates to object.NilValue, which is falsy: an
// omitted condition stops the loop immediately rather than looping
// forever, a deliberately preserved quirk (see DESIGN.md).
func evalFor(node *ast.ForStmt, outer *object.Environment) (flow, error) {
	env := object.NewEnclosedEnvironment(outer)
	if node.Init != nil {
		if _, err := evalStatement(node.Init, env); err != nil {
			return noFlow, err
		}
	}
	for {
		var cond object.Value = object.NilValue
		if node.Condition != nil {
			c, err := evalExpr(node.Condition, env)
			if err != nil {
				return noFlow, err
			}
			cond = c
		}
		if !object.IsTruthy(cond) {
			return noFlow, nil
		}

		f, err := evalStatement(node.Body, env)
		if err != nil {
			return noFlow, err
		}
		if f.returning {
			return f, nil
		}

		if node.Post != nil {
			if _, err := evalExpr(node.Post, env); err != nil {
				return noFlow, err
			}
		}
	}
}

func evalExpr(expr ast.Expression, env *object.Environment) (object.Value, error) {
	switch node := expr.(type) {
	case *ast.Literal:
		return evalLiteral(node), nil

	case *ast.Identifier:
		val, ok := env.Get(node.Value)
		if !ok {
			return nil, object.NewUndefinedVariableError(node.Value)
		}
		return val, nil

	case *ast.Grouping:
		return evalExpr(node.Expression, env)

	case *ast.Unary:
		return evalUnary(node, env)

	case *ast.Binary:
		return evalBinary(node, env)

	case *ast.Logical:
		return evalLogical(node, env)

	case *ast.Assign:
		val, err := evalExpr(node.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.Assign(node.Name.Value, val) {
			return nil, object.NewUndefinedVariableError(node.Name.Value)
		}
		return val, nil

	case *ast.Call:
		return evalCall(node, env)
	}

	return nil, fmt.Errorf("evaluator: unhandled expression %T", expr)
}

func evalLiteral(node *ast.Literal) object.Value {
	switch node.Kind {
	case ast.NumberLiteralKind:
		return object.NumberFromLexeme(node.Token.Lexeme, node.Number)
	case ast.StringLiteralKind:
		return &object.String{Value: node.Str}
	case ast.BoolLiteralKind:
		return object.NativeBool(node.Bool)
	default:
		return object.NilValue
	}
}

func evalUnary(node *ast.Unary, env *object.Environment) (object.Value, error) {
	right, err := evalExpr(node.Right, env)
	if err != nil {
		return nil, err
	}
	switch node.Operator {
	case "!":
		return object.NativeBool(!object.IsTruthy(right)), nil
	case "-":
		f, ok := object.AsFloat(right)
		if !ok {
			return nil, object.NewOperandsMustBeNumbersError()
		}
		if i, isInt := right.(*object.Integer); isInt {
			return &object.Integer{Value: -i.Value}, nil
		}
		return &object.Float{Value: -f}, nil
	}
	return nil, fmt.Errorf("evaluator: unknown unary operator %s", node.Operator)
}

func evalLogical(node *ast.Logical, env *object.Environment) (object.Value, error) {
	left, err := evalExpr(node.Left, env)
	if err != nil {
		return nil, err
	}
	// `and` short-circuits to a boolean false; `or` short-circuits to the
	// left operand itself. The asymmetry is intentional (see DESIGN.md)
	// and reproduced exactly rather than unified into one rule.
	switch node.Operator {
	case "and":
		if !object.IsTruthy(left) {
			return object.FalseValue, nil
		}
		return evalExpr(node.Right, env)
	case "or":
		if object.IsTruthy(left) {
			return left, nil
		}
		return evalExpr(node.Right, env)
	}
	return nil, fmt.Errorf("evaluator: unknown logical operator %s", node.Operator)
}

func evalBinary(node *ast.Binary, env *object.Environment) (object.Value, error) {
	left, err := evalExpr(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := evalExpr(node.Right, env)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case "==":
		return object.NativeBool(object.ValuesEqual(left, right)), nil
	case "!=":
		return object.NativeBool(!object.ValuesEqual(left, right)), nil
	case "+":
		return evalAdd(left, right)
	case "-", "*", "/", "<", "<=", ">", ">=":
		return evalNumericBinary(node.Operator, left, right)
	}
	return nil, fmt.Errorf("evaluator: unknown binary operator %s", node.Operator)
}

// evalAdd is the one operator overloaded across two types: number + number
// and string + string. Anything else is OperandsMustMatch.
func evalAdd(left, right object.Value) (object.Value, error) {
	lf, lok := object.AsFloat(left)
	rf, rok := object.AsFloat(right)
	if lok && rok {
		li, liok := left.(*object.Integer)
		ri, riok := right.(*object.Integer)
		if liok && riok {
			return &object.Integer{Value: li.Value + ri.Value}, nil
		}
		return &object.Float{Value: lf + rf}, nil
	}
	ls, lsok := left.(*object.String)
	rs, rsok := right.(*object.String)
	if lsok && rsok {
		return &object.String{Value: ls.Value + rs.Value}, nil
	}
	return nil, object.NewOperandsMustMatchError()
}

// evalNumericBinary handles every operator that requires two numbers:
// arithmetic and ordering. Division carries the one documented quirk:
// an evenly-divisible integer pair yields an exact integer quotient,
// everything else yields a real quotient (including ordinary
// division-by-zero, which follows IEEE-754 and produces +/-Inf rather
// than a raised error).
func evalNumericBinary(op string, left, right object.Value) (object.Value, error) {
	lf, lok := object.AsFloat(left)
	rf, rok := object.AsFloat(right)
	if !lok || !rok {
		return nil, object.NewOperandsMustBeNumbersError()
	}
	li, liok := left.(*object.Integer)
	ri, riok := right.(*object.Integer)
	bothInt := liok && riok

	switch op {
	case "-":
		if bothInt {
			return &object.Integer{Value: li.Value - ri.Value}, nil
		}
		return &object.Float{Value: lf - rf}, nil
	case "*":
		if bothInt {
			return &object.Integer{Value: li.Value * ri.Value}, nil
		}
		return &object.Float{Value: lf * rf}, nil
	case "/":
		if bothInt && ri.Value != 0 && li.Value%ri.Value == 0 {
			return &object.Integer{Value: li.Value / ri.Value}, nil
		}
		return &object.Float{Value: lf / rf}, nil
	case "<":
		return object.NativeBool(lf < rf), nil
	case "<=":
		return object.NativeBool(lf <= rf), nil
	case ">":
		return object.NativeBool(lf > rf), nil
	case ">=":
		return object.NativeBool(lf >= rf), nil
	}
	return nil, fmt.Errorf("evaluator: unknown numeric operator %s", op)
}

func evalCall(node *ast.Call, env *object.Environment) (object.Value, error) {
	callee, err := evalExpr(node.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(node.Args))
	for _, a := range node.Args {
		v, err := evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *object.Builtin:
		return fn.Fn(args)

	case *object.Function:
		if len(args) != len(fn.Definition.Params) {
			return nil, object.NewWrongArityError(len(fn.Definition.Params), len(args))
		}
		// One child environment per invocation, chained to the environment
		// captured at definition time. Two concurrently live calls to the
		// same function get independent frames that still share whatever
		// the closure captured, which is what makes a counter returned
		// from a factory function keep its own running count.
		callEnv := object.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Definition.Params {
			callEnv.DeclareWith(param.Value, args[i])
		}
		f, err := evalBlock(fn.Definition.Body, callEnv)
		if err != nil {
			return nil, err
		}
		if f.returning {
			return f.value, nil
		}
		return object.NilValue, nil

	default:
		return nil, object.NewNotCallableError()
	}
}
