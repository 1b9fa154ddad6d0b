package i18n

import "golang.org/x/text/language"

var supported = []language.Tag{language.English, language.Russian}

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		"appName": "Task manager",

		"flash.session.create.success":    "You are logged in",
		"flash.session.create.error":      "Wrong email or password",
		"flash.session.delete.success":    "You are logged out",
		"flash.users.create.success":      "User registered successfully",
		"flash.users.create.error":        "Failed to register",
		"flash.users.edit.success":        "User changed successfully",
		"flash.users.edit.error":          "Failed to change user",
		"flash.users.delete.success":      "User deleted successfully",
		"flash.users.delete.error":        "Failed to delete user",
		"flash.users.delete.inUse":        "Cannot delete a user who has tasks",
		"flash.statuses.create.success":   "Status created successfully",
		"flash.statuses.create.error":     "Failed to create status",
		"flash.statuses.edit.success":     "Status changed successfully",
		"flash.statuses.edit.error":       "Failed to change status",
		"flash.statuses.delete.success":   "Status deleted successfully",
		"flash.statuses.delete.error":     "Failed to delete status",
		"flash.statuses.delete.inUse":     "Cannot delete a status that tasks use",
		"flash.labels.create.success":     "Label created successfully",
		"flash.labels.create.error":       "Failed to create label",
		"flash.labels.edit.success":       "Label changed successfully",
		"flash.labels.edit.error":         "Failed to change label",
		"flash.labels.delete.success":     "Label deleted successfully",
		"flash.labels.delete.error":       "Failed to delete label",
		"flash.tasks.create.success":      "Task created successfully",
		"flash.tasks.create.error":        "Failed to create task",
		"flash.tasks.edit.success":        "Task changed successfully",
		"flash.tasks.edit.error":          "Failed to change task",
		"flash.tasks.delete.success":      "Task deleted successfully",
		"flash.tasks.delete.error":        "Failed to delete task",
		"flash.tasks.delete.accessDenied": "A task can only be deleted by its author",
		"flash.authError":                 "Access denied! Please sign in.",
		"flash.accessDenied":              "You cannot edit or delete another user",
		"flash.notFound":                  "Nothing was found at this address",

		"errors.required":       "can't be blank",
		"errors.too_short":      "must be at least %d characters",
		"errors.too_long":       "must be at most %d characters",
		"errors.invalid_email":  "must be a valid email",
		"errors.taken":          "is already taken",
		"errors.not_a_number":   "must be a number",
		"errors.does_not_exist": "does not exist",
		"errors.invalid":        "is invalid",

		"layouts.application.users":    "Users",
		"layouts.application.statuses": "Statuses",
		"layouts.application.labels":   "Labels",
		"layouts.application.tasks":    "Tasks",
		"layouts.application.signIn":   "Sign In",
		"layouts.application.signUp":   "Sign Up",
		"layouts.application.signOut":  "Sign Out",

		"views.welcome.index.hello":       "Welcome to Task Manager!",
		"views.welcome.index.description": "A simple task management system. Set tasks, assign executors and change their statuses.",
		"views.session.new.signIn":        "Sign In",
		"views.session.new.submit":        "Login",
		"views.errors.notFound":           "Page not found",
		"views.errors.internal":           "Something went wrong",

		"views.common.id":        "ID",
		"views.common.name":      "Name",
		"views.common.createdAt": "Created at",
		"views.common.actions":   "Actions",
		"views.common.edit":      "Edit",
		"views.common.delete":    "Delete",
		"views.common.save":      "Save",
		"views.common.create":    "Create",
		"views.common.show":      "Show",

		"views.users.title":      "Users",
		"views.users.fullName":   "Full name",
		"views.users.firstName":  "First name",
		"views.users.lastName":   "Last name",
		"views.users.email":      "Email",
		"views.users.password":   "Password",
		"views.users.new.title":  "Sign Up",
		"views.users.edit.title": "Edit user",

		"views.statuses.title":      "Statuses",
		"views.statuses.new.title":  "Create status",
		"views.statuses.edit.title": "Edit status",

		"views.labels.title":      "Labels",
		"views.labels.new.title":  "Create label",
		"views.labels.edit.title": "Edit label",

		"views.tasks.title":                "Tasks",
		"views.tasks.new.title":            "Create task",
		"views.tasks.edit.title":           "Edit task",
		"views.tasks.description":          "Description",
		"views.tasks.status":               "Status",
		"views.tasks.creator":              "Author",
		"views.tasks.executor":             "Executor",
		"views.tasks.labels":               "Labels",
		"views.tasks.filter.label":         "Label",
		"views.tasks.filter.isCreatorUser": "Only my tasks",
		"views.tasks.filter.submit":        "Show",
	},
	language.Russian: {
		"appName": "Менеджер задач",

		"flash.session.create.success":    "Вы залогинены",
		"flash.session.create.error":      "Неправильный адрес электронной почты или пароль",
		"flash.session.delete.success":    "Вы разлогинены",
		"flash.users.create.success":      "Пользователь успешно зарегистрирован",
		"flash.users.create.error":        "Не удалось зарегистрировать",
		"flash.users.edit.success":        "Пользователь успешно изменен",
		"flash.users.edit.error":          "Не удалось изменить пользователя",
		"flash.users.delete.success":      "Пользователь успешно удален",
		"flash.users.delete.error":        "Не удалось удалить пользователя",
		"flash.users.delete.inUse":        "Нельзя удалить пользователя, связанного с задачами",
		"flash.statuses.create.success":   "Статус успешно создан",
		"flash.statuses.create.error":     "Не удалось создать статус",
		"flash.statuses.edit.success":     "Статус успешно изменён",
		"flash.statuses.edit.error":       "Не удалось изменить статус",
		"flash.statuses.delete.success":   "Статус успешно удалён",
		"flash.statuses.delete.error":     "Не удалось удалить статус",
		"flash.statuses.delete.inUse":     "Нельзя удалить статус, который используют задачи",
		"flash.labels.create.success":     "Метка успешно создана",
		"flash.labels.create.error":       "Не удалось создать метку",
		"flash.labels.edit.success":       "Метка успешно изменена",
		"flash.labels.edit.error":         "Не удалось изменить метку",
		"flash.labels.delete.success":     "Метка успешно удалена",
		"flash.labels.delete.error":       "Не удалось удалить метку",
		"flash.tasks.create.success":      "Задача успешно создана",
		"flash.tasks.create.error":        "Не удалось создать задачу",
		"flash.tasks.edit.success":        "Задача успешно изменена",
		"flash.tasks.edit.error":          "Не удалось изменить задачу",
		"flash.tasks.delete.success":      "Задача успешно удалена",
		"flash.tasks.delete.error":        "Не удалось удалить задачу",
		"flash.tasks.delete.accessDenied": "Задачу может удалить только её автор",
		"flash.authError":                 "Доступ запрещён! Пожалуйста, авторизируйтесь.",
		"flash.accessDenied":              "Вы не можете редактировать или удалять другого пользователя",
		"flash.notFound":                  "По этому адресу ничего не найдено",

		"errors.required":       "не может быть пустым",
		"errors.too_short":      "должно быть не короче %d символов",
		"errors.too_long":       "должно быть не длиннее %d символов",
		"errors.invalid_email":  "должно быть корректным адресом почты",
		"errors.taken":          "уже занято",
		"errors.not_a_number":   "должно быть числом",
		"errors.does_not_exist": "не существует",
		"errors.invalid":        "некорректно",

		"layouts.application.users":    "Пользователи",
		"layouts.application.statuses": "Статусы",
		"layouts.application.labels":   "Метки",
		"layouts.application.tasks":    "Задачи",
		"layouts.application.signIn":   "Вход",
		"layouts.application.signUp":   "Регистрация",
		"layouts.application.signOut":  "Выход",

		"views.welcome.index.hello":       "Добро пожаловать!",
		"views.welcome.index.description": "Простая система управления. Позволяет ставить задачи, назначать исполнителей и менять их статусы.",
		"views.session.new.signIn":        "Вход",
		"views.session.new.submit":        "Войти",
		"views.errors.notFound":           "Страница не найдена",
		"views.errors.internal":           "Что-то пошло не так",

		"views.common.id":        "ID",
		"views.common.name":      "Наименование",
		"views.common.createdAt": "Дата создания",
		"views.common.actions":   "Действия",
		"views.common.edit":      "Изменить",
		"views.common.delete":    "Удалить",
		"views.common.save":      "Сохранить",
		"views.common.create":    "Создать",
		"views.common.show":      "Показать",

		"views.users.title":      "Пользователи",
		"views.users.fullName":   "Полное имя",
		"views.users.firstName":  "Имя",
		"views.users.lastName":   "Фамилия",
		"views.users.email":      "Email",
		"views.users.password":   "Пароль",
		"views.users.new.title":  "Регистрация",
		"views.users.edit.title": "Изменение пользователя",

		"views.statuses.title":      "Статусы",
		"views.statuses.new.title":  "Создание статуса",
		"views.statuses.edit.title": "Изменение статуса",

		"views.labels.title":      "Метки",
		"views.labels.new.title":  "Создание метки",
		"views.labels.edit.title": "Изменение метки",

		"views.tasks.title":                "Задачи",
		"views.tasks.new.title":            "Создание задачи",
		"views.tasks.edit.title":           "Изменение задачи",
		"views.tasks.description":          "Описание",
		"views.tasks.status":               "Статус",
		"views.tasks.creator":              "Автор",
		"views.tasks.executor":             "Исполнитель",
		"views.tasks.labels":               "Метки",
		"views.tasks.filter.label":         "Метка",
		"views.tasks.filter.isCreatorUser": "Только мои задачи",
		"views.tasks.filter.submit":        "Показать",
	},
}
