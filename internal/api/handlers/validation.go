package handlers

import (
	"errors"
	"fmt"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// validationMessages тексты ошибок валидации для посетителя сайта
var validationMessages = []struct {
	err     error
	message string
}{
	{domain.ErrNameTooShort, fmt.Sprintf("Le nom doit contenir au moins %d caractères.", domain.MinUserNameLength)},
	{domain.ErrNameTooLong, "Le nom est trop long."},
	{domain.ErrInvalidEmail, "Veuillez saisir une adresse email valide."},
	{domain.ErrPhoneTooShort, fmt.Sprintf("Le numéro de téléphone doit contenir au moins %d caractères.", domain.MinPhoneLength)},
	{domain.ErrPhoneTooLong, "Le numéro de téléphone est trop long."},
	{domain.ErrNegativeChars, "Le nombre de chars ne peut pas être négatif."},
	{domain.ErrNoChars, "Veuillez sélectionner au moins un char."},
	{domain.ErrTooManyChars, "Le nombre de chars demandé est trop élevé."},
	{domain.ErrMessageTooShort, fmt.Sprintf("Le message doit contenir au moins %d caractères.", domain.MinContactMessageLength)},
	{domain.ErrMessageTooLong, "Le message est trop long."},
	{domain.ErrInvalidTimeRange, "L'heure de fin doit être postérieure à l'heure de début."},
	{domain.ErrNegativeCapacity, "La capacité ne peut pas être négative."},
}

// ValidationMessage возвращает понятный пользователю текст ошибки валидации
// Если ошибка не относится к правилам домена, возвращается fallback
func ValidationMessage(err error, fallback string) string {
	for _, v := range validationMessages {
		if errors.Is(err, v.err) {
			return v.message
		}
	}
	return fallback
}
