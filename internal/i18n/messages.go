package i18n

// Message keys. Each key is also the lookup id in the catalog.
const (
	StructureBlockType       = "block-type-error"
	StructureConnection      = "connection-structure-error"
	StructureMissingBlock    = "missing-block-error"
	StructureDuplicateID     = "duplicate-block-error"
	StructureNoWeights       = "matrix-no-weights-error"
	StructureMixedInputs     = "mixed-inputs-error"
	StructurePlotInput       = "plot-input-error"
	StructureRequestField    = "request-field-error"
	StructureEmptyRequest    = "empty-request-error"
	DataExtension            = "data-extension-error"
	DataCrispMatrix          = "crisp-matrix-format-error"
	DataFuzzyMatrix          = "fuzzy-matrix-format-error"
	DataCriteriaTypesNumber  = "criteria-types-number-error"
	DataCriteriaTypesValues  = "criteria-types-values-error"
	DataCriteriaDimension    = "criteria-dimension-error"
	DataAlternativeDimension = "alternative-dimension-error"
	DataWeightsSum           = "weights-sum-error"
	DataFuzzyWeights         = "fuzzy-weights-error"
	DataWeightsFormat        = "weights-format-error"
	DataMissingInput         = "missing-input-error"
	DataModeMismatch         = "data-mode-error"
	MethodName               = "method-name-error"
	MethodResult             = "method-result-error"
	MethodLength             = "method-length-error"
	MethodCall               = "method-call-error"
	ParameterUnknown         = "parameter-unknown-error"
	ParameterValue           = "parameter-value-error"
	ParameterFunction        = "parameter-function-error"
	ParameterESP             = "parameter-esp-error"
	AggregationSize          = "aggregation-size-error"
	AggregationSeries        = "aggregation-series-error"
)

type entry struct {
	key, en, pl string
}

var messages = []entry{
	{StructureBlockType,
		"Block type '%s' not allowed. Check the block with ID %d",
		"Typ bloku '%s' jest niedozwolony. Sprawdź blok o ID %d"},
	{StructureConnection,
		"Connection structure is wrong. Check the connection between %s and %s (ID %d)",
		"Struktura połączeń jest niepoprawna. Sprawdź połączenie między %s i %s (ID %d)"},
	{StructureMissingBlock,
		"Block with ID %d connected to block with ID %d not found",
		"Nie znaleziono bloku o ID %d połączonego z blokiem o ID %d"},
	{StructureDuplicateID,
		"Block ID %d is used more than once",
		"ID bloku %d zostało użyte więcej niż raz"},
	{StructureNoWeights,
		"No blocks were connected to matrix with ID %d",
		"Do macierzy o ID %d nie podłączono żadnych bloków"},
	{StructureMixedInputs,
		"Blocks connected to block with ID %d must be of the same type",
		"Bloki podłączone do bloku o ID %d muszą być tego samego typu"},
	{StructurePlotInput,
		"Plot %s cannot present %s results (ID %d)",
		"Wykres %s nie może przedstawić wyników typu %s (ID %d)"},
	{StructureRequestField,
		"Field '%s' of block with ID %d is invalid",
		"Pole '%s' bloku o ID %d jest niepoprawne"},
	{StructureEmptyRequest,
		"Request does not contain any blocks",
		"Żądanie nie zawiera żadnych bloków"},
	{DataExtension,
		"'%s' is not a supported data extension (ID %d)",
		"'%s' nie jest obsługiwanym rozszerzeniem danych (ID %d)"},
	{DataCrispMatrix,
		"Crisp matrix should be a non-empty rectangular table of numbers (ID %d)",
		"Macierz ostra powinna być niepustą prostokątną tablicą liczb (ID %d)"},
	{DataFuzzyMatrix,
		"Fuzzy matrix should contain triangular fuzzy numbers in every cell (ID %d)",
		"Macierz rozmyta powinna zawierać trójkątne liczby rozmyte w każdej komórce (ID %d)"},
	{DataCriteriaTypesNumber,
		"Number of criteria types does not match number of criteria: %d, %d (ID %d)",
		"Liczba typów kryteriów nie odpowiada liczbie kryteriów: %d, %d (ID %d)"},
	{DataCriteriaTypesValues,
		"Criteria types should be given as -1 or 1 (ID %d)",
		"Typy kryteriów powinny przyjmować wartości -1 lub 1 (ID %d)"},
	{DataCriteriaDimension,
		"Number of weights does not match number of criteria: %d, %d (ID %d)",
		"Liczba wag nie odpowiada liczbie kryteriów: %d, %d (ID %d)"},
	{DataAlternativeDimension,
		"Number of values does not match number of alternatives: %d, %d (ID %d)",
		"Liczba wartości nie odpowiada liczbie alternatyw: %d, %d (ID %d)"},
	{DataWeightsSum,
		"Weights should sum up to 1 (ID %d)",
		"Wagi powinny sumować się do 1 (ID %d)"},
	{DataFuzzyWeights,
		"Fuzzy weights should be given as triangular fuzzy numbers (ID %d)",
		"Wagi rozmyte powinny być podane jako trójkątne liczby rozmyte (ID %d)"},
	{DataWeightsFormat,
		"Weights should be given as a list of numbers (ID %d)",
		"Wagi powinny być podane jako lista liczb (ID %d)"},
	{DataMissingInput,
		"Block with ID %d requires user-defined values",
		"Blok o ID %d wymaga wartości zdefiniowanych przez użytkownika"},
	{DataModeMismatch,
		"Block with ID %d expects %s data but matrix with ID %d is %s",
		"Blok o ID %d oczekuje danych %s, a macierz o ID %d zawiera dane %s"},
	{MethodName,
		"Method '%s' not found for %s data (ID %d)",
		"Nie znaleziono metody '%s' dla danych %s (ID %d)"},
	{MethodResult,
		"Method '%s' returned values that are not finite (ID %d)",
		"Metoda '%s' zwróciła wartości, które nie są skończone (ID %d)"},
	{MethodLength,
		"Method '%s' returned %d values, expected %d (ID %d)",
		"Metoda '%s' zwróciła %d wartości, oczekiwano %d (ID %d)"},
	{MethodCall,
		"Method '%s' could not be calculated (ID %d)",
		"Nie udało się obliczyć metody '%s' (ID %d)"},
	{ParameterUnknown,
		"Parameter '%s' is not supported by method '%s'",
		"Parametr '%s' nie jest obsługiwany przez metodę '%s'"},
	{ParameterValue,
		"Parameter '%s' of method '%s' has an invalid value",
		"Parametr '%s' metody '%s' ma niepoprawną wartość"},
	{ParameterFunction,
		"Function '%s' given in parameter '%s' is not available for method '%s'",
		"Funkcja '%s' podana w parametrze '%s' nie jest dostępna dla metody '%s'"},
	{ParameterESP,
		"Missing parameter 'esp' for the expert function 'esp_expert' of method '%s'",
		"Brak parametru 'esp' dla funkcji eksperckiej 'esp_expert' metody '%s'"},
	{AggregationSize,
		"Results of type %s connected to block with ID %d have different sizes",
		"Wyniki typu %s podłączone do bloku o ID %d mają różne rozmiary"},
	{AggregationSeries,
		"Plot %s requires exactly %d data series, got %d (ID %d)",
		"Wykres %s wymaga dokładnie %d serii danych, otrzymano %d (ID %d)"},
}
