package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ParseUUID разбирает обязательный UUID
func ParseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("empty uuid")
	}
	return id, nil
}

// QueryUUID необязательный UUID из query; nil, если параметра нет
func QueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := ParseUUID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// QueryDate необязательная дата YYYY-MM-DD; нулевое время, если параметра нет
func QueryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateFormat, raw)
}

// QueryBool необязательный флаг (true/false/1/0); false, если параметра нет
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// QueryInt необязательное целое; def, если параметра нет
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
