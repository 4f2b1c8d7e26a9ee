package ir

// Names of the runtime helpers lowering passes may call.  The helpers are
// declared on demand as external public functions of the module being lowered;
// the serializer emits them as imports of the target runtime.
const (
	// BuiltinFillArray allocates an array of a given size and invokes an
	// init lambda for every index: fillArray(size, init).
	BuiltinFillArray = "fillArray"

	// BuiltinUninitialized raises the uninitialized-property error for a
	// lateinit property read before its first assignment.
	BuiltinUninitialized = "throwUninitializedProperty"
)

// builtinParams lists the parameter names of each runtime helper.
var builtinParams = map[string][]string{
	BuiltinFillArray:     {"size", "init"},
	BuiltinUninitialized: {"name"},
}

// Builtin returns the symbol of the named runtime helper, declaring it in the
// module on first use.
func (m *Module) Builtin(name string) *Symbol {
	if m.builtins == nil {
		m.builtins = make(map[string]*Symbol)
	}

	if sym, ok := m.builtins[name]; ok {
		return sym
	}

	var params []*VarDef
	for _, pname := range builtinParams[name] {
		params = append(params, &VarDef{Name: pname})
	}

	fd := NewFuncDecl(name, Public, params...)
	fd.Synthetic = true
	m.AddDecl(fd)

	m.builtins[name] = fd.Sym()
	return fd.Sym()
}
