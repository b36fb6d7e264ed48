package enum

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StornoReason is why an original fiscal document is being reversed.
type StornoReason int

const (
	StornoOperatorError StornoReason = 0
	StornoReturn        StornoReason = 1
	StornoTaxReduction  StornoReason = 2
)

func (r StornoReason) String() string {
	names := [...]string{"Оператор грешка", "Връщане/рекламация", "Данъчна редукция"}
	if !r.Valid() {
		return strconv.Itoa(int(r))
	}
	return names[r]
}

func (r StornoReason) Valid() bool {
	return r >= StornoOperatorError && r <= StornoTaxReduction
}

// MarshalJSON emits the device code as a string ("0", "1", "2").
func (r StornoReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(r)))
}

func (r *StornoReason) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = StornoReason(i)
		return nil
	}
	str = strings.TrimSpace(str)
	if str == "" {
		*r = StornoOperatorError
		return nil
	}
	i, err := strconv.Atoi(str)
	if err != nil {
		*r = StornoReason(-1)
		return nil
	}
	*r = StornoReason(i)
	return nil
}
